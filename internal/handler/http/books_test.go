// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-share/internal/app"
	"github.com/MKhiriev/go-book-share/internal/service"
	"github.com/MKhiriev/go-book-share/models"
)

// authorized registers an Authenticate expectation for "tok".
func authorized(mocks testServices) {
	mocks.auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(testUser, nil)
}

func TestCreateBook(t *testing.T) {
	t.Run("created with owner from token", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		authorized(mocks)
		mocks.books.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).
			DoAndReturn(func(_ any, owner models.User, req models.CreateBookRequest) (models.Book, error) {
				require.NotNil(t, req.Rating)
				assert.Equal(t, 4.5, req.Rating.Float64())
				return models.Book{BookID: 1, Title: req.Title, Rating: req.Rating.Float64(), Owner: owner.Owner()}, nil
			})

		body := `{"title":"Dune","caption":"spice","image":"https://img.example.com/d.png","rating":"4.5"}`
		rr := doRequest(t, router, http.MethodPost, "/api/books", body, bearer("tok"))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got models.Book
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.BookID)
		assert.Equal(t, "alice", got.Owner.Username)
	})

	t.Run("rating is not a number", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		authorized(mocks)

		rr := doRequest(t, router, http.MethodPost, "/api/books", `{"title":"Dune","rating":"five"}`, bearer("tok"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidJSON, decodeMessage(t, rr))
	})

	t.Run("rating out of range", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		authorized(mocks)
		mocks.books.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).Return(models.Book{}, service.ErrRatingOutOfRange)

		rr := doRequest(t, router, http.MethodPost, "/api/books", `{"title":"Dune","rating":5.5}`, bearer("tok"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgRatingOutOfRange, decodeMessage(t, rr))
	})

	t.Run("without token", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(t, router, http.MethodPost, "/api/books", `{}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListBooks_Pagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.ListBooksRequest
	}{
		{name: "explicit", query: "?page=2&limit=3", want: models.ListBooksRequest{Page: 2, Limit: 3}},
		{name: "absent", query: "", want: models.ListBooksRequest{}},
		{name: "garbage", query: "?page=abc&limit=1.5", want: models.ListBooksRequest{}},
		{name: "negative passed through", query: "?page=-1&limit=0", want: models.ListBooksRequest{Page: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			authorized(mocks)
			mocks.books.EXPECT().List(gomock.Any(), tt.want).
				Return(models.BookPage{Books: []models.Book{}, CurrentPage: 1}, nil)

			rr := doRequest(t, router, http.MethodGet, "/api/books"+tt.query, nil, bearer("tok"))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"books":[],"currentPage":1,"totalBooks":0,"totalPages":0}`, rr.Body.String())
		})
	}
}

func TestListBooks_StoreFailure(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorized(mocks)
	mocks.books.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.BookPage{}, service.ErrInternal)

	rr := doRequest(t, router, http.MethodGet, "/api/books", nil, bearer("tok"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeMessage(t, rr))
}

func TestListMyBooks_NilBecomesEmptyArray(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorized(mocks)
	mocks.books.EXPECT().ListByOwner(gomock.Any(), testUser.UserID).Return(nil, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/books/user", nil, bearer("tok"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDeleteBook(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		serviceErr  error
		callService bool
		wantStatus  int
		wantMessage string
	}{
		{name: "owner deletes", path: "/api/books/5", callService: true,
			wantStatus: http.StatusOK, wantMessage: app.MsgBookDeleted},
		{name: "not a number", path: "/api/books/abc",
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidBookID},
		{name: "zero id", path: "/api/books/0",
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidBookID},
		{name: "someone else's book", path: "/api/books/5", callService: true, serviceErr: service.ErrNotBookOwner,
			wantStatus: http.StatusForbidden, wantMessage: app.MsgUnauthorizedDelete},
		{name: "already gone", path: "/api/books/5", callService: true, serviceErr: service.ErrBookNotFound,
			wantStatus: http.StatusNotFound, wantMessage: app.MsgBookNotFound},
		{name: "store failure", path: "/api/books/5", callService: true, serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			authorized(mocks)
			if tt.callService {
				mocks.books.EXPECT().Delete(gomock.Any(), testUser.UserID, int64(5)).Return(tt.serviceErr)
			}

			rr := doRequest(t, router, http.MethodDelete, tt.path, nil, bearer("tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}
