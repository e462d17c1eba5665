package httpapi

import (
	"errors"
	"net/http"

	"github.com/openfooty/roster-api/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Login")
	defer span.End()

	var req loginRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	token, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
