// Package users provides the user record store.
//
// The store is a memstore.Collection of *models.User plus a unique index on
// the normalized email (see textx.Key), so lookups by email are O(1) and
// case-insensitive. Users are never deleted; only the contact fields change,
// through UpdateContact.
//
// Typical usage:
//
//	store := users.NewMemoryRepository()
//	u, err := store.Register(ctx, &models.User{Email: "ana@example.com", ...})
//	u, ok := store.FindByEmail(ctx, "ANA@example.com")
package users
