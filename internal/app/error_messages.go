// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// book-share server handlers, services and the CLI client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAllFieldsRequired is returned when a required field is missing.
	MsgAllFieldsRequired = "All fields are required"

	// MsgUsernameTooShort is returned when a username has fewer than 3 characters.
	MsgUsernameTooShort = "Username should be at least 3 characters long"

	// MsgPasswordTooShort is returned when a password has fewer than 6 characters.
	MsgPasswordTooShort = "Password should be at least 6 characters long"

	// MsgEmailAlreadyExists is returned when the email is already registered.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgUsernameAlreadyExists is returned when the username is already taken.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgPasswordTooLong is returned when a password exceeds the bcrypt input
	// limit of 72 bytes.
	MsgPasswordTooLong = "Password should be at most 72 bytes long"

	// MsgInvalidCredentials is returned for both an unknown email and a wrong
	// password so that callers cannot enumerate accounts.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgNoAuthToken is returned when a protected route is called without a
	// bearer token.
	MsgNoAuthToken = "No authentication token provided, access denied"

	// MsgInvalidAuthToken is returned when the bearer token is malformed,
	// expired, or points to a user that no longer exists.
	MsgInvalidAuthToken = "Invalid token, access denied"

	// MsgRatingOutOfRange is returned when a rating is outside [0, 5].
	MsgRatingOutOfRange = "Rating must be between 0 and 5"

	// MsgInvalidImage is returned when the image is neither a data URI nor an
	// http(s) URL.
	MsgInvalidImage = "Image must be a base64 data URI or an http(s) URL"

	// MsgImageUploadDisabled is returned for data URI images when the server
	// has no image bucket configured.
	MsgImageUploadDisabled = "Image uploads are disabled, pass an image URL instead"

	// MsgInvalidBookID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidBookID = "Invalid book id"

	// MsgBookNotFound is returned when a book id does not resolve.
	MsgBookNotFound = "Book not found"

	// MsgUnauthorizedDelete is returned when a user tries to delete a book
	// owned by somebody else.
	MsgUnauthorizedDelete = "You are not allowed to delete this book"

	// MsgBookDeleted is returned after a successful deletion.
	MsgBookDeleted = "Book deleted successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
