// Package session tracks the single identity acting in the process.
//
// The Holder keeps only the user id. Current resolves it through the user
// store on every call, so the session always reflects the stored record and
// never keeps a stale copy.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
)

// State is the authentication state of a Holder.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// UserLookup resolves user ids. users.Repository satisfies it.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, bool)
}

// Holder is a single-slot, last-write-wins session.
type Holder struct {
	mu     sync.Mutex
	users  UserLookup
	userID string
}

func NewHolder(users UserLookup) *Holder {
	return &Holder{users: users}
}

// Login replaces the active session with u. u must be a stored user: a nil
// or id-less user is a validation error and an id the store does not know
// fails with common.ErrNotFound. On error the previous session is kept.
func (h *Holder) Login(ctx context.Context, u *models.User) error {
	if u == nil || u.ID == "" {
		return common.NewValidationError("user", "a stored user is required to log in")
	}
	if _, ok := h.users.FindByID(ctx, u.ID); !ok {
		return fmt.Errorf("%w: user %q", common.ErrNotFound, u.ID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.userID = u.ID
	return nil
}

// Logout clears the session. Calling it without a session is a no-op.
func (h *Holder) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.userID = ""
}

// Current returns the authenticated user as currently stored.
func (h *Holder) Current(ctx context.Context) (*models.User, bool) {
	h.mu.Lock()
	id := h.userID
	h.mu.Unlock()

	if id == "" {
		return nil, false
	}
	return h.users.FindByID(ctx, id)
}

func (h *Holder) IsActive(ctx context.Context) bool {
	return h.State(ctx) == Authenticated
}

// State is Authenticated only while the session user still resolves, so it
// always agrees with Current.
func (h *Holder) State(ctx context.Context) State {
	if _, ok := h.Current(ctx); ok {
		return Authenticated
	}
	return Anonymous
}
