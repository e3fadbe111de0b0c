package httpserver

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("clave-de-prueba")
	id := uuid.New()

	tok, exp, err := issueToken(secret, id, "x@tienda.com", time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	got, err := verifyToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _, err := issueToken([]byte("clave-a"), uuid.New(), "x@tienda.com", time.Hour)
	require.NoError(t, err)

	_, err = verifyToken([]byte("clave-b"), tok)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	secret := []byte("clave-de-prueba")
	tok, _, err := issueToken(secret, uuid.New(), "x@tienda.com", -time.Minute)
	require.NoError(t, err)

	_, err = verifyToken(secret, tok)
	assert.Error(t, err)
}

func TestTokenTampered(t *testing.T) {
	secret := []byte("clave-de-prueba")
	tok, _, err := issueToken(secret, uuid.New(), "x@tienda.com", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = verifyToken(secret, forged)
	assert.Error(t, err)

	_, err = verifyToken(secret, "no-es-un-token")
	assert.Error(t, err)
}
