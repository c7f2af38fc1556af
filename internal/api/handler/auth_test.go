package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	h := &Handler{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}

	token, err := h.generateJWT("quiet_fox", "Alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, name, err := h.parseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "quiet_fox", username)
	assert.Equal(t, "Alice", name)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	h := &Handler{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	token, err := h.generateJWT("quiet_fox", "Alice")
	assert.NoError(t, err)

	other := &Handler{JWTSecret: []byte("other-secret"), TokenTTL: time.Hour}
	_, _, err = other.parseJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	h := &Handler{JWTSecret: []byte("test-secret"), TokenTTL: -time.Minute}
	token, err := h.generateJWT("quiet_fox", "Alice")
	assert.NoError(t, err)

	_, _, err = h.parseJWT(token)
	assert.Error(t, err)
}
