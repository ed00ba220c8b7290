// Package properties provides the property record store.
//
// # Overview
//
// The store is a memstore.Collection of *models.Property with an ordered
// price index attached. The index is a B-tree (github.com/google/btree) of
// price buckets; every bucket holds the properties sharing that exact price
// in registration order. It answers range queries, cheapest/most expensive
// top-N, min/max price and full ordered traversal without sorting.
//
// # Ordering
//
// Results are ordered by price, then by registration order inside a price.
// Descending traversals walk the buckets from the highest price down but
// still list tied properties in registration order.
//
// # Mutability
//
// Properties are never deleted and their price never changes once
// registered. Availability is the only mutable field and is not indexed.
package properties
