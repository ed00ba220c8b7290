// Package services contains the application services of the catalog.
//
//   - AuthService: registration with input validation, login and logout.
//   - SearchService: validated multi-filter search and catalog facets.
//   - ListingService: publishing by hosts, availability changes and the
//     price-index read models (cheapest, most expensive, range, ordering).
//   - StatsService: catalog and user totals.
//
// Services never log. Input problems are returned as *common.ValidationError
// whose message is meant to be shown to the user as is; authorization
// problems as common.ErrUnauthorized / common.ErrForbidden.
package services
