package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/finanzapp/internal/models"
	"github.com/dcastano/finanzapp/internal/shared"
)

func TestRegister_CreatesUserAndZeroedProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, registerInput("a@x.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Equal(t, models.DefaultRoleID, user.RoleID)
	assert.NotEqual(t, "secret1", user.PasswordHash, "password must not be stored in plaintext")
	assert.False(t, user.RegisteredAt.IsZero())

	// Registration alone does not open a session.
	assert.False(t, env.auth.IsAuthenticated(ctx))

	// The default profile exists and is zeroed.
	registerAndLogin(t, env, "b@x.com")
	profile, err := env.profiles.ProfileForCurrentUser(ctx)
	require.NoError(t, err)
	assert.Zero(t, profile.MonthlyIncome)
	assert.Zero(t, profile.SavingsLevel)
	assert.Empty(t, profile.Objective)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.auth.Register(ctx, registerInput("a@x.com"))
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, registerInput("a@x.com"))
	assert.ErrorIs(t, err, shared.ErrDuplicateEmail)

	// The first user is unaffected.
	user, err := env.auth.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "malformed email", input: RegisterInput{Email: "not-an-email", Password: "secret1"}},
		{name: "short password", input: RegisterInput{Email: "a@x.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, tt.input)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, registerInput("a@x.com"))
	require.NoError(t, err)

	user, err := env.auth.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.True(t, env.auth.IsAuthenticated(ctx))

	current, err := env.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, current.ID)
	assert.Equal(t, registered.Email, current.Email)
	assert.Equal(t, registered.PasswordHash, current.PasswordHash)
	assert.True(t, registered.RegisteredAt.Equal(current.RegisteredAt))

	_, err = env.auth.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLogout_ClearsSessionUnconditionally(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Logging out without a session still succeeds.
	require.NoError(t, env.auth.Logout(ctx))

	registerAndLogin(t, env, "a@x.com")
	require.NoError(t, env.auth.Logout(ctx))

	assert.False(t, env.auth.IsAuthenticated(ctx))
	_, err := env.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}

func TestUpdateUserInfo_RewritesSessionSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "a@x.com")

	newPhone := "3119876543"
	updated, err := env.auth.UpdateUserInfo(ctx, UserPatch{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)

	// The session snapshot must not serve stale data.
	current, err := env.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, newPhone, current.Phone)
	// Unpatched fields are retained.
	assert.Equal(t, "Ana", current.FirstName)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "a@x.com")

	err := env.auth.ChangePassword(ctx, "wrong", "newsecret")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

	err = env.auth.ChangePassword(ctx, "secret1", "short")
	assert.ErrorIs(t, err, shared.ErrValidation)

	require.NoError(t, env.auth.ChangePassword(ctx, "secret1", "newsecret"))

	// Old password no longer works, new one does.
	require.NoError(t, env.auth.Logout(ctx))
	_, err = env.auth.Login(ctx, "a@x.com", "secret1")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	_, err = env.auth.Login(ctx, "a@x.com", "newsecret")
	assert.NoError(t, err)
}

func TestCurrentUser_NoSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.CurrentUser(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	assert.False(t, env.auth.IsAuthenticated(context.Background()))
}
