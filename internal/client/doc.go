// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the book-share command-line client.
//
// Each invocation runs a single command (register, login, books list, ...)
// against the API. The session of the logged-in user is kept in a local
// SQLite file between invocations.
package client
