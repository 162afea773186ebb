// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-book-share/internal/app"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/models"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgInvalidAuthToken, http.StatusUnauthorized)
		return
	}

	var req models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.Create(r.Context(), owner, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("book_id", book.BookID).Int64("owner_id", owner.UserID).Msg("book created")
	utils.WriteJSON(w, book, http.StatusCreated)
}

// listBooks serves the paginated feed. Unparsable page and limit values are
// treated as absent.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.ListBooksRequest{
		Page:  queryInt(query.Get("page")),
		Limit: queryInt(query.Get("limit")),
	}

	page, err := h.services.BookService.List(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) listMyBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgInvalidAuthToken, http.StatusUnauthorized)
		return
	}

	books, err := h.services.BookService.ListByOwner(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgInvalidAuthToken, http.StatusUnauthorized)
		return
	}

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || bookID <= 0 {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("invalid book id")
		utils.WriteMessage(w, app.MsgInvalidBookID, http.StatusBadRequest)
		return
	}

	if err = h.services.BookService.Delete(r.Context(), userID, bookID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("book_id", bookID).Int64("user_id", userID).Msg("book deleted")
	utils.WriteMessage(w, app.MsgBookDeleted, http.StatusOK)
}

func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
