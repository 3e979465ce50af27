package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcastano/finanzapp/internal/auth"
	"github.com/dcastano/finanzapp/internal/logging"
	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/repositories/profiles"
	"github.com/dcastano/finanzapp/internal/repositories/users"
	"github.com/dcastano/finanzapp/internal/shared"
	"github.com/dcastano/finanzapp/internal/storage"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SessionReader exposes the current session to the other services. The
// session is an explicit injected dependency, not global state; whoever
// constructs the services decides whose session they see.
type SessionReader interface {
	// CurrentUser returns a snapshot of the logged-in user, or
	// shared.ErrNotAuthenticated when there is no valid session.
	CurrentUser(ctx context.Context) (*models.User, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Phone          string
	IdentityNumber string
	IdentityType   string
}

// UserPatch updates personal fields of the logged-in user. Nil fields are
// left unchanged. Email and password deliberately have no place here:
// the email identifies the account and the password changes through
// ChangePassword.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	IdentityNumber *string
	IdentityType   *string
}

// AuthService implements identity and session handling.
//
// Contract:
//   - Register: create an account plus its default financial profile.
//   - Login: verify credentials and persist the session pointer.
//   - Logout: drop the session pointer unconditionally.
//   - CurrentUser / IsAuthenticated: read the persisted session.
//   - UpdateUserInfo / ChangePassword: mutate the logged-in user's record
//     and re-write the session snapshot so reads stay consistent.
type AuthService interface {
	SessionReader

	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	UpdateUserInfo(ctx context.Context, patch UserPatch) (*models.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

type authService struct {
	users           users.Repository
	profiles        profiles.Repository
	store           storage.Store
	log             logging.Logger
	sessionSecret   []byte
	sessionValidity time.Duration
}

// NewAuthService constructs an AuthService. The store is used for the
// session pointer only; user records go through the repository.
func NewAuthService(usersRepo users.Repository, profilesRepo profiles.Repository,
	store storage.Store, log logging.Logger, sessionSecret string, sessionValidity time.Duration) AuthService {
	return &authService{
		users:           usersRepo,
		profiles:        profilesRepo,
		store:           store,
		log:             log.With("component", "auth"),
		sessionSecret:   []byte(sessionSecret),
		sessionValidity: sessionValidity,
	}
}

// Register creates a new account. The email must not be taken (exact,
// case-sensitive match against existing users) and the password must be at
// least six characters. The stored password is a bcrypt hash, never the
// plaintext the original application kept.
func (a *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: %q is not a valid email", shared.ErrValidation, input.Email)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", shared.ErrValidation, minPasswordLength)
	}

	_, err := a.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, shared.ErrDuplicateEmail
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:             uuid.NewString(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Phone:          input.Phone,
		IdentityNumber: input.IdentityNumber,
		IdentityType:   input.IdentityType,
		Status:         models.UserStatusActive,
		RegisteredAt:   time.Now().UTC(),
		RoleID:         models.DefaultRoleID,
	}

	if err := a.users.Append(ctx, user); err != nil {
		return nil, err
	}

	// Every account starts with a zeroed financial profile.
	profile := models.FinancialProfile{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UpdatedAt: time.Now().UTC(),
	}
	if err := a.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "userID", user.ID)
	return &user, nil
}

// Login verifies the credentials and, on success, persists the session
// pointer: a full snapshot of the user plus a signed token bounding the
// session lifetime.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, shared.ErrInvalidCredentials
	}

	if err := a.writeSession(ctx, *user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "userID", user.ID)
	return user, nil
}

// Logout removes the session pointer. It succeeds even when nobody is
// logged in; navigation back to the entry page is the caller's concern.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Remove(ctx, storage.CollectionSession)
}

// CurrentUser reads the persisted session snapshot. A missing slot or an
// expired/tampered token both count as "no session".
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	var session models.Session
	if err := a.store.Get(ctx, storage.CollectionSession, &session); err != nil {
		return nil, shared.ErrNotAuthenticated
	}

	userID, err := auth.GetUserIDFromToken(session.Token, a.sessionSecret)
	if err != nil || userID != session.User.ID {
		a.log.Warn(ctx, "rejecting stale or invalid session", "error", err)
		return nil, shared.ErrNotAuthenticated
	}

	user := session.User
	return &user, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, err := a.CurrentUser(ctx)
	return err == nil
}

// UpdateUserInfo merges the patch into the logged-in user's record and
// re-writes the session snapshot. Skipping the re-write would leave
// CurrentUser serving stale data: the snapshot is a copy, not a reference.
func (a *authService) UpdateUserInfo(ctx context.Context, patch UserPatch) (*models.User, error) {
	current, err := a.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindByID(ctx, current.ID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.IdentityNumber != nil {
		user.IdentityNumber = *patch.IdentityNumber
	}
	if patch.IdentityType != nil {
		user.IdentityType = *patch.IdentityType
	}

	if err := a.users.Update(ctx, *user); err != nil {
		return nil, err
	}
	if err := a.refreshSessionSnapshot(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, stores a hash of the new
// one and re-writes the session snapshot.
func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	current, err := a.CurrentUser(ctx)
	if err != nil {
		return err
	}

	user, err := a.users.FindByID(ctx, current.ID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return shared.ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", shared.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := a.users.Update(ctx, *user); err != nil {
		return err
	}
	return a.refreshSessionSnapshot(ctx, *user)
}

// writeSession issues a fresh token and persists the session pointer.
func (a *authService) writeSession(ctx context.Context, user models.User) error {
	token, err := auth.GenerateToken(user.ID, a.sessionSecret, a.sessionValidity)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}
	return a.store.Put(ctx, storage.CollectionSession, models.Session{User: user, Token: token})
}

// refreshSessionSnapshot replaces the user snapshot while keeping the
// existing token, so edits do not silently extend the session lifetime.
func (a *authService) refreshSessionSnapshot(ctx context.Context, user models.User) error {
	var session models.Session
	if err := a.store.Get(ctx, storage.CollectionSession, &session); err != nil {
		return err
	}
	session.User = user
	return a.store.Put(ctx, storage.CollectionSession, session)
}
