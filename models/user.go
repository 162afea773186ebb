package models

import "time"

// User represents an account entity used for authentication and ownership of
// books. PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// UserID is the store-assigned identifier of the user. It is also the
	// subject of every bearer token issued for the account.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the user (at least 3 characters).
	Username string `json:"username"`

	// Email is the unique address used for logging in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// ProfileImage is the avatar URL. A default one derived from the username
	// is assigned at registration.
	ProfileImage string `json:"profileImage"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user that is safe to expose to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Owner returns the short summary of the user embedded into book listings.
func (u User) Owner() BookOwner {
	return BookOwner{
		UserID:       u.UserID,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
	}
}
