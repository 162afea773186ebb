// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-share/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestWithUser_StripsPasswordHash(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{UserID: 42, Username: "alice", PasswordHash: "$2a$10$x"})

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.UserID != 42 || user.Username != "alice" {
		t.Errorf("unexpected user %+v", user)
	}
	if user.PasswordHash != "" {
		t.Error("expected password hash to be cleared")
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{UserID: 42})

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_ZeroID(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{})

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for zero user id")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type, got true")
	}
}
