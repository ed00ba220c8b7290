package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
)

// parseAmount parses a user-typed amount. Blank input reports supplied=false.
// label names the amount in messages, field in the returned error.
func parseAmount(raw, field, label string) (value float64, supplied bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, common.NewValidationError(field, label+" must be a valid number")
	}
	if v < 0 {
		return 0, true, common.NewValidationError(field, label+" cannot be negative")
	}
	return v, true, nil
}

// parseBounds parses a min/max pair and rejects min > max when both are
// positive.
func parseBounds(minText, maxText string) (min, max float64, err error) {
	min, _, err = parseAmount(minText, "priceMin", "minimum price")
	if err != nil {
		return 0, 0, err
	}
	max, _, err = parseAmount(maxText, "priceMax", "maximum price")
	if err != nil {
		return 0, 0, err
	}
	if min > 0 && max > 0 && min > max {
		return 0, 0, common.NewValidationError("priceMin", "minimum price cannot be greater than maximum price")
	}
	return min, max, nil
}

// parseCount parses a non-negative whole number such as a bedroom count.
func parseCount(raw, field, label string, min int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, common.NewValidationError(field, label+" is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.NewValidationError(field, label+" must be a whole number")
	}
	if n < min {
		if min == 0 {
			return 0, common.NewValidationError(field, label+" cannot be negative")
		}
		return 0, common.NewValidationError(field, label+" must be at least "+strconv.Itoa(min))
	}
	return n, nil
}
