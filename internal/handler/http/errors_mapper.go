package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-share/internal/app"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/service"
	"github.com/MKhiriev/go-book-share/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:   http.StatusBadRequest,
	service.ErrConflict:     http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrForbidden:    http.StatusForbidden,
	service.ErrNotFound:     http.StatusNotFound,
	service.ErrInternal:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the public message of err. Details of 500s stay
// in the log.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := service.PublicMessage(err)
	if status == http.StatusInternalServerError || message == "" {
		log.Err(err).Msg("request failed")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, message, status)
}
