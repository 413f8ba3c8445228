package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port/usecases_port"
)

// SessionHandler обслуживает вход по email, восстановление и сброс сессии.
type SessionHandler struct {
	loginUC   usecases_port.LoginUseCasePort
	sessionUC usecases_port.GetSessionUseCasePort
	logoutUC  usecases_port.LogoutUseCasePort
}

func NewSessionHandler(
	loginUC usecases_port.LoginUseCasePort,
	sessionUC usecases_port.GetSessionUseCasePort,
	logoutUC usecases_port.LogoutUseCasePort,
) *SessionHandler {
	return &SessionHandler{
		loginUC:   loginUC,
		sessionUC: sessionUC,
		logoutUC:  logoutUC,
	}
}

// Login обрабатывает POST /api/v1/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var reqDTO LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.TrimSpace(reqDTO.Email)
	if email == "" {
		WriteJSONError(w, http.StatusBadRequest, "email is required")
		return
	}

	broker, err := h.loginUC.Execute(r.Context(), email)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Broker logged in", port.Fields{"broker_id": broker.ID})
	RespondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: true, Broker: &broker})
}

// GetSession обрабатывает GET /api/v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSession"})

	broker, ok, err := h.sessionUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	if !ok {
		RespondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	RespondWithJSON(w, http.StatusOK, SessionResponse{Authenticated: true, Broker: &broker})
}

// Logout обрабатывает POST /api/v1/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Logout"})

	if err := h.logoutUC.Execute(r.Context()); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Broker logged out", nil)
	w.WriteHeader(http.StatusNoContent)
}
