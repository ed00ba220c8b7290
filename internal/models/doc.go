// Package models defines the records held by the catalog stores: users with
// their closed set of roles, and rentable properties.
//
// Records are plain values. Stores hand out copies produced by Clone, so a
// caller mutating a returned record never reaches the stored one.
package models
