// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-share/models"
)

const (
	sessionTable = "session"
	sessionRowID = 1
)

// buildUpsertSessionQuery renders an INSERT that replaces the single session
// row (id = 1).
func buildUpsertSessionQuery(session models.Session) (string, []any, error) {
	query, args, err := sq.
		Insert(sessionTable).
		Columns("id", "token", "user_id", "username", "email", "profile_image", "logged_at").
		Values(
			sessionRowID,
			session.Token,
			session.User.UserID,
			session.User.Username,
			session.User.Email,
			session.User.ProfileImage,
			session.LoggedAt.UTC(),
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			username = excluded.username,
			email = excluded.email,
			profile_image = excluded.profile_image,
			logged_at = excluded.logged_at`).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectSessionQuery() (string, []any, error) {
	query, args, err := sq.
		Select("token", "user_id", "username", "email", "profile_image", "logged_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteSessionQuery() (string, []any, error) {
	query, args, err := sq.
		Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
