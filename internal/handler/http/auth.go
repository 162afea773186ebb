package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-share/internal/app"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	auth, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", auth.User.UserID).Msg("user registered")
	writeAuthResponse(w, auth, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	auth, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", auth.User.UserID).Msg("user successfully logged in")
	writeAuthResponse(w, auth, http.StatusOK)
}

// writeAuthResponse sends the token both in the body and in the
// Authorization header.
func writeAuthResponse(w http.ResponseWriter, auth models.AuthResponse, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", auth.Token))
	utils.WriteJSON(w, auth, status)
}
