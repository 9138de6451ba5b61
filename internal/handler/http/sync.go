package http

import (
	"net/http"

	"github.com/nzdigital/capdev-backend-go/internal/handler/http/response"
	syncService "github.com/nzdigital/capdev-backend-go/internal/service/sync"
)

type SyncHandler interface {
	TriggerJira(w http.ResponseWriter, r *http.Request)
	TriggerIPayroll(w http.ResponseWriter, r *http.Request)
}

type syncHandlerImpl struct {
	syncService syncService.SyncService
}

func NewSyncHandler(service syncService.SyncService) SyncHandler {
	return &syncHandlerImpl{syncService: service}
}

func (h *syncHandlerImpl) TriggerJira(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.SyncJira(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Jira sync completed", result)
}

func (h *syncHandlerImpl) TriggerIPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.SyncIPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "iPayroll sync completed", result)
}
