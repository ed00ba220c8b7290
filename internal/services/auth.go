package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

const DefaultMinPasswordLength = 6

// AuthService defines account operations.
//
// Contract:
//   - Register: validate the form, hash the password and store the user.
//   - Login: verify credentials and replace the active session.
//   - Logout: clear the session; safe to call without one.
//   - Current: the user behind the active session, if any.
//   - UpdateProfile: change the signed-in user's display name and phone.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (Result, error)
	Login(ctx context.Context, email string, password []byte) (LoginResult, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) (*models.User, bool)
	UpdateProfile(ctx context.Context, name, phone string) (*models.User, error)
}

// RegisterRequest carries the raw registration form.
type RegisterRequest struct {
	Name         string
	Email        string
	Phone        string
	Password     []byte
	Confirmation []byte
	Role         string
}

// Result is an outcome message for operations without a payload.
type Result struct {
	Message string
}

type LoginResult struct {
	User    *models.User
	Message string
}

type authService struct {
	users             users.Repository
	hasher            cryptox.Hasher
	session           *session.Holder
	minPasswordLength int
	now               func() time.Time
}

// NewAuthService wires the user store, the password hasher and the session.
// A minPasswordLength below 1 falls back to DefaultMinPasswordLength.
func NewAuthService(users users.Repository, hasher cryptox.Hasher, sess *session.Holder, minPasswordLength int) AuthService {
	if minPasswordLength < 1 {
		minPasswordLength = DefaultMinPasswordLength
	}
	return &authService{
		users:             users,
		hasher:            hasher,
		session:           sess,
		minPasswordLength: minPasswordLength,
		now:               time.Now,
	}
}

const emailTakenMessage = "email is already registered; use another email or log in"

// Register validates the form in a fixed order and reports the first
// problem found.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (Result, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	roleName := strings.TrimSpace(req.Role)

	switch {
	case name == "":
		return Result{}, common.NewValidationError("name", "name is required")
	case email == "":
		return Result{}, common.NewValidationError("email", "email is required")
	case phone == "":
		return Result{}, common.NewValidationError("phone", "phone is required")
	case len(req.Password) == 0:
		return Result{}, common.NewValidationError("password", "password is required")
	case roleName == "":
		return Result{}, common.NewValidationError("role", "a role must be selected")
	}

	if !validEmail(email) {
		return Result{}, common.NewValidationError("email", "email format is not valid")
	}
	if a.users.EmailExists(ctx, email) {
		return Result{}, &common.ConflictError{Message: emailTakenMessage}
	}
	if utf8.RuneCount(req.Password) < a.minPasswordLength {
		return Result{}, common.NewValidationError("password",
			"password must be at least "+strconv.Itoa(a.minPasswordLength)+" characters")
	}
	if !bytes.Equal(req.Password, req.Confirmation) {
		return Result{}, common.NewValidationError("confirmation", "passwords do not match")
	}
	if !validPhone(phone) {
		return Result{}, common.NewValidationError("phone", "phone must have 10 digits")
	}
	role, err := models.ParseRole(roleName)
	if err != nil {
		return Result{}, common.NewValidationError("role", "role is not valid")
	}

	u := &models.User{
		DisplayName:    name,
		Email:          email,
		Phone:          phone,
		PasswordDigest: a.hasher.Hash(req.Password),
		Role:           role,
		RegisteredOn:   a.now(),
	}
	if _, err := a.users.Register(ctx, u); err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return Result{}, &common.ConflictError{Message: emailTakenMessage, Err: err}
		}
		return Result{}, err
	}
	return Result{Message: "User registered successfully. You can now log in."}, nil
}

// Login returns common.ErrInvalidCredentials for an unknown email or a wrong
// password alike.
func (a *authService) Login(ctx context.Context, email string, password []byte) (LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return LoginResult{}, common.NewValidationError("email", "email is required")
	}
	if len(password) == 0 {
		return LoginResult{}, common.NewValidationError("password", "password is required")
	}

	u, ok := a.users.FindByEmail(ctx, email)
	if !ok || !a.hasher.Verify(password, u.PasswordDigest) {
		return LoginResult{}, common.ErrInvalidCredentials
	}

	if err := a.session.Login(ctx, u); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u, Message: "Welcome " + u.DisplayName + "!"}, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout()
}

func (a *authService) Current(ctx context.Context) (*models.User, bool) {
	return a.session.Current(ctx)
}

// UpdateProfile applies the registration rules for name and phone to the
// signed-in user. Email, role and password are not editable.
func (a *authService) UpdateProfile(ctx context.Context, name, phone string) (*models.User, error) {
	u, ok := a.session.Current(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: log in first", common.ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, common.NewValidationError("name", "name is required")
	}
	if phone == "" {
		return nil, common.NewValidationError("phone", "phone is required")
	}
	if !validPhone(phone) {
		return nil, common.NewValidationError("phone", "phone must have 10 digits")
	}
	return a.users.UpdateContact(ctx, u.ID, name, phone)
}

// validEmail requires an "@" after the first character, a "." after the
// "@" and at least two characters after that dot.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	return at > 0 && dot > at && dot < len(email)-2
}

// validPhone requires exactly ten digits once spaces and dashes are removed.
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r == ' ' || r == '-':
		case r >= '0' && r <= '9':
			digits++
		default:
			return false
		}
	}
	return digits == 10
}
