package cli

import (
	"errors"

	"github.com/dmitrijs2005/staykonnect/internal/common"
)

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	var ve *common.ValidationError
	var ce *common.ConflictError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &ce):
		return ce.Message
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Incorrect email or password"
	case errors.Is(err, common.ErrUnauthorized):
		return "You must log in first"
	case errors.Is(err, common.ErrForbidden):
		return "You are not allowed to do that"
	case errors.Is(err, common.ErrNotFound):
		return "Property not found"
	default:
		return "Error: " + err.Error()
	}
}
