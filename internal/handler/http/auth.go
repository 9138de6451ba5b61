package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/pkg/ipayroll"
	syncService "github.com/nzdigital/capdev-backend-go/internal/service/sync"
)

type AuthHandler interface {
	// ConnectIPayroll starts the authorization-code flow with the payroll
	// vendor.
	ConnectIPayroll(w http.ResponseWriter, r *http.Request)
	// IPayrollCallback exchanges the code and persists the token.
	IPayrollCallback(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	ipayrollService ipayroll.Service
	syncService     syncService.SyncService
	frontendURL     string
}

func NewAuthHandler(ipayrollService ipayroll.Service, syncSvc syncService.SyncService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		ipayrollService: ipayrollService,
		syncService:     syncSvc,
		frontendURL:     frontendURL,
	}
}

// ConnectIPayroll implements AuthHandler.
func (a *AuthHandlerImpl) ConnectIPayroll(w http.ResponseWriter, r *http.Request) {
	state := a.ipayrollService.GenerateState(r.UserAgent())
	cookie := &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/api/v1/auth/ipayroll/callback",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	url := a.ipayrollService.RedirectURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// IPayrollCallback implements AuthHandler.
func (a *AuthHandlerImpl) IPayrollCallback(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/settings/integrations?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	if r.URL.Query().Get("state") != stateReq.Value {
		slog.Error("State mismatch on iPayroll callback")
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		redirectWithError("missing_code")
		return
	}

	token, err := a.ipayrollService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("iPayroll code exchange failed", "error", err)
		redirectWithError("exchange_failed")
		return
	}

	if err := a.syncService.StoreIPayrollToken(r.Context(), token); err != nil {
		slog.Error("Failed to persist iPayroll token", "error", err)
		redirectWithError("token_store_failed")
		return
	}

	http.Redirect(w, r, a.frontendURL+"/settings/integrations?connected=ipayroll", http.StatusTemporaryRedirect)
}
