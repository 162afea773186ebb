// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-book-share/internal/adapter"
)

var adapterErrorClasses = map[error]error{
	adapter.ErrBadRequest:          ErrValidation,
	adapter.ErrUnauthorized:        ErrUnauthorized,
	adapter.ErrForbidden:           ErrForbidden,
	adapter.ErrNotFound:            ErrNotFound,
	adapter.ErrConflict:            ErrConflict,
	adapter.ErrInternalServerError: ErrInternal,
}

// mapAdapterError translates the adapter's transport error into a domain
// error carrying the server's message. Transport failures pass through.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	for transportErr, class := range adapterErrorClasses {
		if errors.Is(err, transportErr) {
			return newDomainError(class, extractBody(err))
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
