// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/dalemusser/creatorhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the signed-in user's name, Mongo ObjectID and a found flag.
// A missing user or a malformed id yields "", NilObjectID, false, so ok=true
// always comes with a usable ObjectID.
func UserCtx(r *http.Request) (name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Corrupt session; fail closed.
		return "", primitive.NilObjectID, false
	}
	return user.Name, userID, true
}

// UserIDPtr returns the signed-in user's id, or nil for visitors.
func UserIDPtr(r *http.Request) *primitive.ObjectID {
	_, id, ok := UserCtx(r)
	if !ok {
		return nil
	}
	return &id
}
