package users

import (
	"context"

	"github.com/dmitrijs2005/staykonnect/internal/models"
)

// Repository describes the operations on registered users. Lookups report
// absence through the boolean result, never through an error.
type Repository interface {
	// Register stores u, assigning an id when it has none. A second user with
	// the same normalized email fails with common.ErrDuplicateKey.
	Register(ctx context.Context, u *models.User) (*models.User, error)

	FindByID(ctx context.Context, id string) (*models.User, bool)
	FindByEmail(ctx context.Context, email string) (*models.User, bool)
	EmailExists(ctx context.Context, email string) bool

	// ListAll returns a snapshot in registration order.
	ListAll(ctx context.Context) []*models.User
	CountByRole(ctx context.Context, role models.Role) int

	// UpdateContact replaces the display name and phone of an existing user.
	UpdateContact(ctx context.Context, id, displayName, phone string) (*models.User, error)

	Len() int
}
