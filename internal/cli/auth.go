package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/services"
)

// getSimpleText, getPassword, getMultiline and getList are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getList       = GetList
)

// Register prompts for the registration form and creates the account.
// Passwords are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var req services.RegisterRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "Phone (10 digits)", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.reader, a.inFd, "Password", a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(req.Password)
	if req.Confirmation, err = getPassword(a.reader, a.inFd, "Confirm password", a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(req.Confirmation)
	if req.Role, err = getSimpleText(a.reader, "Role (traveler/host)", a.out); err != nil {
		return err
	}

	res, err := a.authService.Register(ctx, req)
	if err != nil {
		a.log.Info(ctx, "registration rejected", "field", common.FieldOf(err), "error", err)
		return err
	}
	a.log.Info(ctx, "user registered", "role", req.Role)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login prompts for credentials and replaces the active session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.inFd, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.log.Warn(ctx, "login failed")
		}
		return err
	}
	a.log.Info(ctx, "login successful", "user_id", res.User.ID, "role", res.User.Role)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.log.Info(ctx, "logged out")
	fmt.Fprintln(a.out, "Session closed")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.authService.Current(ctx)
	if !ok {
		return common.ErrUnauthorized
	}
	renderUser(a.out, u)
	return nil
}

// Profile prompts for a new display name and phone for the signed-in user.
// Empty answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	u, ok := a.authService.Current(ctx)
	if !ok {
		return common.ErrUnauthorized
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", u.DisplayName), a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", u.Phone), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = u.DisplayName
	}
	if phone == "" {
		phone = u.Phone
	}

	updated, err := a.authService.UpdateProfile(ctx, name, phone)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "profile updated", "user_id", updated.ID)
	fmt.Fprintln(a.out, "Profile updated")
	renderUser(a.out, updated)
	return nil
}
