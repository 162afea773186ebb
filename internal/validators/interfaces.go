// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the stores.
//
// Validators return the sentinel errors of this package; the service layer
// translates them into client-facing domain errors.
package validators

import "context"

// Validator checks a request value. When fields are given only those fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
