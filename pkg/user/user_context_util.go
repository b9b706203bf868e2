package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const UserKey contextKey = "user"

// ErrNoUser signals that no session is attached to the context. Callers that
// mirror data remotely treat this as "skip the remote store", not a failure.
var ErrNoUser = errors.New("no user session")

// CurrentUid retrieves the current user's uid from the context.
// Returns ErrNoUser when no session is present.
func CurrentUid(ctx context.Context) (string, error) {
	u, ok := ctx.Value(UserKey).(User)
	if !ok || u.Uid == "" {
		log.Trace("user not found in context")
		return "", ErrNoUser
	}
	return u.Uid, nil
}

// CurrentUser retrieves the full user from the context.
func CurrentUser(ctx context.Context) (User, error) {
	u, ok := ctx.Value(UserKey).(User)
	if !ok || u.Uid == "" {
		log.Trace("user not found in context")
		return User{}, ErrNoUser
	}
	return u, nil
}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, UserKey, u)
}
