package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/role"
	"github.com/nzdigital/capdev-backend-go/internal/domain/team"
	"github.com/nzdigital/capdev-backend-go/internal/domain/timetype"
	"github.com/nzdigital/capdev-backend-go/internal/handler/http/response"
	"github.com/nzdigital/capdev-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Team handlers
	CreateTeam(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)
	CreateBoard(w http.ResponseWriter, r *http.Request)
	DeleteBoard(w http.ResponseWriter, r *http.Request)

	// Role handlers
	CreateRole(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)

	// General time assignment handlers
	CreateGeneralTimeAssignment(w http.ResponseWriter, r *http.Request)
	ListGeneralTimeAssignments(w http.ResponseWriter, r *http.Request)
	DeleteGeneralTimeAssignment(w http.ResponseWriter, r *http.Request)

	// Time type handlers
	CreateTimeType(w http.ResponseWriter, r *http.Request)
	GetTimeType(w http.ResponseWriter, r *http.Request)
	ListTimeTypes(w http.ResponseWriter, r *http.Request)
	UpdateTimeType(w http.ResponseWriter, r *http.Request)
	DeleteTimeType(w http.ResponseWriter, r *http.Request)

	// Project handlers
	ListProjects(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

// ==================== TEAM HANDLERS ====================

func (h *masterHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateTeam(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", result)
}

func (h *masterHandlerImpl) GetTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetTeam(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListTeams(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateTeam(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Team updated successfully"})
}

func (h *masterHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteTeam(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Team deleted successfully"})
}

func (h *masterHandlerImpl) CreateBoard(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	var req team.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TeamID = teamID

	result, err := h.masterService.CreateBoard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Board created successfully", result)
}

func (h *masterHandlerImpl) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "boardID")

	if err := h.masterService.DeleteBoard(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Board deleted successfully"})
}

// ==================== ROLE HANDLERS ====================

func (h *masterHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role created successfully", result)
}

func (h *masterHandlerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetRole(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateRole(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Role updated successfully"})
}

func (h *masterHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteRole(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Role deleted successfully"})
}

// ==================== GENERAL TIME ASSIGNMENT HANDLERS ====================

func (h *masterHandlerImpl) CreateGeneralTimeAssignment(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "id")

	var req role.CreateGeneralTimeAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RoleID = roleID

	result, err := h.masterService.CreateGeneralTimeAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "General time assignment created successfully", result)
}

func (h *masterHandlerImpl) ListGeneralTimeAssignments(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "id")

	results, err := h.masterService.ListGeneralTimeAssignments(r.Context(), roleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) DeleteGeneralTimeAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assignmentID")

	if err := h.masterService.DeleteGeneralTimeAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "General time assignment deleted successfully"})
}

// ==================== TIME TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateTimeType(w http.ResponseWriter, r *http.Request) {
	var req timetype.CreateTimeTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateTimeType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time type created successfully", result)
}

func (h *masterHandlerImpl) GetTimeType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetTimeType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListTimeTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListTimeTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateTimeType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req timetype.UpdateTimeTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateTimeType(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Time type updated successfully"})
}

func (h *masterHandlerImpl) DeleteTimeType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteTimeType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Time type deleted successfully"})
}

// ==================== PROJECT HANDLERS ====================

func (h *masterHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	boardID := r.URL.Query().Get("board_id")

	if boardID != "" {
		results, err := h.masterService.ListProjectsByBoard(r.Context(), boardID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	results, err := h.masterService.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
