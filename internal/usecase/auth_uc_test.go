package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	uc := &AuthUC{Users: newFakeUserRepo()}

	u, err := uc.Register(context.Background(), "  Dueno@Tienda.com ", "Dueño", "secreta1")
	require.NoError(t, err)
	assert.Equal(t, "dueno@tienda.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secreta1", u.PasswordHash)

	got, err := uc.Login(context.Background(), "DUENO@tienda.com", "secreta1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	uc := &AuthUC{Users: newFakeUserRepo()}

	_, err := uc.Register(context.Background(), "no-es-email", "X", "secreta1")
	assert.Error(t, err)

	_, err = uc.Register(context.Background(), "x@tienda.com", "X", "corta")
	assert.Error(t, err)

	_, err = uc.Register(context.Background(), "x@tienda.com", "X", "secreta1")
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "x@tienda.com", "Otro", "secreta2")
	assert.Error(t, err)
}

func TestLoginBadCredentials(t *testing.T) {
	uc := &AuthUC{Users: newFakeUserRepo()}
	_, err := uc.Register(context.Background(), "x@tienda.com", "X", "secreta1")
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "x@tienda.com", "equivocada")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = uc.Login(context.Background(), "nadie@tienda.com", "secreta1")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginExternalCreatesOnce(t *testing.T) {
	uc := &AuthUC{Users: newFakeUserRepo()}

	u1, err := uc.LoginExternal(context.Background(), "G@Gmail.com", "Goomba")
	require.NoError(t, err)
	assert.Equal(t, "g@gmail.com", u1.Email)
	assert.Empty(t, u1.PasswordHash)

	u2, err := uc.LoginExternal(context.Background(), "g@gmail.com", "Goomba")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)

	_, err = uc.LoginExternal(context.Background(), "", "X")
	assert.Error(t, err)
}
