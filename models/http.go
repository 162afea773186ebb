package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBookRequest is the body of POST /api/books.
//
// Rating is a pointer so that an explicit 0 can be told apart from a missing
// field.
type CreateBookRequest struct {
	Title   string         `json:"title"`
	Caption string         `json:"caption"`
	Image   string         `json:"image"`
	Rating  *FlexibleFloat `json:"rating"`
}

// ListBooksRequest is a pagination window requested by GET /api/books.
// Non-positive values are replaced with defaults by the book service.
type ListBooksRequest struct {
	Page  int
	Limit int
}

// FlexibleFloat is a float64 that can be decoded from either a JSON number or
// a JSON string holding a number ("4.5"). Mobile clients send ratings both ways.
type FlexibleFloat float64

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexibleFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("rating is not a number: %w", err)
		}
		*f = FlexibleFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexibleFloat(v)
	return nil
}

// Float64 returns the value as a plain float64.
func (f FlexibleFloat) Float64() float64 {
	return float64(f)
}

// Ptr returns a pointer to a FlexibleFloat holding v.
func Ptr(v float64) *FlexibleFloat {
	f := FlexibleFloat(v)
	return &f
}
