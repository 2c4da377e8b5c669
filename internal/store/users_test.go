package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	us := NewUserStore()

	user, err := us.Register("newuser@test.com", "password123", "New User", "123 Test Street")
	require.NoError(t, err)
	assert.Equal(t, "newuser@test.com", user.Email)
	assert.Equal(t, "New User", user.Name)

	authed, ok := us.Authenticate("newuser@test.com", "password123")
	require.True(t, ok, "un compte fraîchement créé doit pouvoir se connecter")
	assert.Equal(t, "New User", authed.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	us := NewUserStore()
	_, err := us.Register("demo@bookstore.com", "demo123", "Demo User", "")
	require.NoError(t, err)

	_, err = us.Register("demo@bookstore.com", "autre", "Autre", "")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthenticateFailures(t *testing.T) {
	us := NewUserStore()
	us.Register("demo@bookstore.com", "demo123", "Demo User", "")

	_, ok := us.Authenticate("demo@bookstore.com", "wrongpassword")
	assert.False(t, ok)

	_, ok = us.Authenticate("nonexistent@test.com", "password")
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	us := NewUserStore()
	us.Register("demo@bookstore.com", "demo123", "Demo User", "123 Demo Street")

	name := "Updated Name"
	address := "Updated Address"
	require.True(t, us.UpdateProfile("demo@bookstore.com", ProfileUpdate{Name: &name, Address: &address}))

	user, ok := us.Get("demo@bookstore.com")
	require.True(t, ok)
	assert.Equal(t, "Updated Name", user.Name)
	assert.Equal(t, "Updated Address", user.Address)
	assert.Equal(t, "demo123", user.Password, "le mot de passe ne bouge pas sans NewPassword")
}

func TestUpdatePassword(t *testing.T) {
	us := NewUserStore()
	us.Register("demo@bookstore.com", "demo123", "Demo User", "")

	newPassword := "newpassword123"
	require.True(t, us.UpdateProfile("demo@bookstore.com", ProfileUpdate{NewPassword: &newPassword}))

	_, ok := us.Authenticate("demo@bookstore.com", "demo123")
	assert.False(t, ok, "l'ancien mot de passe ne doit plus passer")

	_, ok = us.Authenticate("demo@bookstore.com", "newpassword123")
	assert.True(t, ok)
}

func TestUpdateProfileUnknownEmail(t *testing.T) {
	us := NewUserStore()
	name := "X"
	assert.False(t, us.UpdateProfile("nobody@test.com", ProfileUpdate{Name: &name}))
}
