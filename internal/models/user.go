package models

import "go.mongodb.org/mongo-driver/bson"

// RoleAdmin on a user document grants the advisory admin flag the
// storefront reads. Nothing server-side enforces it.
const RoleAdmin = "admin"

// User is the typed projection of a user document. Only the fields the
// backend itself reads are named; user documents carry whatever else the
// client sent on insert.
type User struct {
	Email string
	Role  string
}

// UserFromDocument projects a raw user document. A nil document (user not
// found) projects to the zero User.
func UserFromDocument(doc bson.M) User {
	var u User
	if doc == nil {
		return u
	}
	u.Email, _ = doc["email"].(string)
	u.Role, _ = doc["role"].(string)
	return u
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
