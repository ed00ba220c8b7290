package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/memstore"
	"github.com/dmitrijs2005/staykonnect/internal/textx"
)

// emailIndex maps the normalized email to the stored user.
type emailIndex struct {
	byKey map[string]*models.User
}

func (i *emailIndex) Check(u *models.User) error {
	if !u.Role.Valid() {
		return common.NewValidationError("role", "a role must be selected")
	}
	k := u.EmailKey()
	if k == "" {
		return common.NewValidationError("email", "email is required")
	}
	if _, ok := i.byKey[k]; ok {
		return fmt.Errorf("%w: email %q", common.ErrDuplicateKey, strings.TrimSpace(u.Email))
	}
	return nil
}

func (i *emailIndex) Insert(u *models.User) {
	i.byKey[u.EmailKey()] = u
}

// MemoryRepository is the in-memory Repository.
type MemoryRepository struct {
	records *memstore.Collection[*models.User]
	emails  *emailIndex
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	idx := &emailIndex{byKey: make(map[string]*models.User)}
	return &MemoryRepository{
		records: memstore.New[*models.User](idx),
		emails:  idx,
	}
}

func (r *MemoryRepository) Register(ctx context.Context, u *models.User) (*models.User, error) {
	return r.records.Register(u)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.User, bool) {
	return r.records.Get(id)
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, bool) {
	k := textx.Key(email)
	var found *models.User
	r.records.View(func() {
		if u, ok := r.emails.byKey[k]; ok {
			found = u.Clone()
		}
	})
	return found, found != nil
}

func (r *MemoryRepository) EmailExists(ctx context.Context, email string) bool {
	_, ok := r.FindByEmail(ctx, email)
	return ok
}

func (r *MemoryRepository) ListAll(ctx context.Context) []*models.User {
	return r.records.All()
}

func (r *MemoryRepository) CountByRole(ctx context.Context, role models.Role) int {
	return r.records.Count(func(u *models.User) bool { return u.Role == role })
}

func (r *MemoryRepository) UpdateContact(ctx context.Context, id, displayName, phone string) (*models.User, error) {
	displayName = strings.TrimSpace(displayName)
	phone = strings.TrimSpace(phone)
	if displayName == "" {
		return nil, common.NewValidationError("name", "name is required")
	}
	if phone == "" {
		return nil, common.NewValidationError("phone", "phone is required")
	}
	return r.records.Update(id, func(u *models.User) error {
		u.DisplayName = displayName
		u.Phone = phone
		return nil
	})
}

func (r *MemoryRepository) Len() int {
	return r.records.Len()
}
