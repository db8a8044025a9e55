package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/store"
)

var ErrUserNotFound = errors.New("user does not exist")

// IdentityResolver maps a caller-supplied identity to an internal user id.
//
// Identity is currently a bare username re-presented on every request. Task
// operations only see this interface, so swapping in token-based identity
// later means swapping the resolver, not the CRUD logic.
type IdentityResolver interface {
	Resolve(ctx context.Context, identity string) (int64, error)
}

// UsernameResolver resolves identities by exact username lookup.
type UsernameResolver struct {
	Store store.Store
}

func (r *UsernameResolver) Resolve(ctx context.Context, identity string) (int64, error) {
	user, err := r.Store.Users().GetUserByUsername(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.ID, nil
}
