// Package memstore provides the generic in-memory record collection the
// catalog stores are built on.
//
// # Overview
//
// A Collection keeps three kinds of structure over one set of records:
//
//   - an insertion-ordered sequence (iteration order = registration order),
//   - a primary index mapping record id to record,
//   - any number of secondary Index values supplied by the owning store
//     (unique email, price ordering, ...).
//
// # Consistency
//
// Register runs every secondary Check before it writes anything, and performs
// all writes inside the same critical section. A rejected record therefore
// leaves every structure untouched, and no reader can observe a record that
// is present in one structure but missing from another.
//
// # Concurrency
//
// One sync.RWMutex guards the collection and every index attached to it.
// Reads take the read lock and return clones; stores that need to walk their
// own index do so inside View.
package memstore
