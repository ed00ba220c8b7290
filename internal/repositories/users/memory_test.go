package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string, role models.Role) *models.User {
	return &models.User{
		DisplayName:    "Test User",
		Email:          email,
		Phone:          "3001234567",
		PasswordDigest: "digest",
		Role:           role,
		RegisteredOn:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister_FindByIDReturnsEqualRecord(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	in := newUser("ana@example.com", models.RoleTraveler)
	got, err := r.Register(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)

	found, ok := r.FindByID(ctx, got.ID)
	require.True(t, ok)
	if diff := cmp.Diff(got, found); diff != "" {
		t.Fatalf("FindByID mismatch (-want +got):\n%s", diff)
	}

	in.ID = got.ID
	if diff := cmp.Diff(in, found); diff != "" {
		t.Fatalf("stored record differs from registered (-want +got):\n%s", diff)
	}
}

func TestEmailExists_CaseVariants(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Register(ctx, newUser("Carlos.Perez@Gmail.com", models.RoleTraveler))
	require.NoError(t, err)

	for _, e := range []string{"carlos.perez@gmail.com", "CARLOS.PEREZ@GMAIL.COM", "  Carlos.Perez@gmail.com "} {
		assert.True(t, r.EmailExists(ctx, e), e)
	}
	assert.False(t, r.EmailExists(ctx, "someone@gmail.com"))

	u, ok := r.FindByEmail(ctx, "carlos.perez@GMAIL.com")
	require.True(t, ok)
	assert.Equal(t, "Carlos.Perez@Gmail.com", u.Email)
}

func TestRegister_DuplicateEmailDifferingInCase(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Register(ctx, newUser("ana@example.com", models.RoleTraveler))
	require.NoError(t, err)

	_, err = r.Register(ctx, newUser("ANA@Example.com", models.RoleHost))
	require.ErrorIs(t, err, common.ErrDuplicateKey)
	assert.Equal(t, 1, r.Len())
	assert.Len(t, r.ListAll(ctx), 1)
	assert.Equal(t, 0, r.CountByRole(ctx, models.RoleHost))
}

func TestRegister_RejectsInvalidRole(t *testing.T) {
	r := NewMemoryRepository()
	_, err := r.Register(context.Background(), newUser("x@example.com", models.Role(0)))
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, r.Len())
}

func TestListAll_SnapshotInRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	for _, e := range []string{"c@x.co", "a@x.co", "b@x.co"} {
		_, err := r.Register(ctx, newUser(e, models.RoleTraveler))
		require.NoError(t, err)
	}

	all := r.ListAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "c@x.co", all[0].Email)
	assert.Equal(t, "b@x.co", all[2].Email)

	all[0].Email = "changed@x.co"
	assert.True(t, r.EmailExists(ctx, "c@x.co"))
	assert.False(t, r.EmailExists(ctx, "changed@x.co"))
}

func TestCountByRole(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	roles := []models.Role{models.RoleAdmin, models.RoleHost, models.RoleTraveler, models.RoleTraveler}
	for i, role := range roles {
		_, err := r.Register(ctx, newUser(string(rune('a'+i))+"@x.co", role))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, r.CountByRole(ctx, models.RoleAdmin))
	assert.Equal(t, 1, r.CountByRole(ctx, models.RoleHost))
	assert.Equal(t, 2, r.CountByRole(ctx, models.RoleTraveler))
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	u, err := r.Register(ctx, newUser("ana@example.com", models.RoleTraveler))
	require.NoError(t, err)

	got, err := r.UpdateContact(ctx, u.ID, " Ana M. ", "3159876543")
	require.NoError(t, err)
	assert.Equal(t, "Ana M.", got.DisplayName)

	found, _ := r.FindByEmail(ctx, "ana@example.com")
	assert.Equal(t, "3159876543", found.Phone)
	assert.Equal(t, u.ID, found.ID)

	_, err = r.UpdateContact(ctx, u.ID, "", "1")
	require.ErrorIs(t, err, common.ErrValidation)
	_, err = r.UpdateContact(ctx, "nope", "Name", "1")
	require.ErrorIs(t, err, common.ErrNotFound)
}
