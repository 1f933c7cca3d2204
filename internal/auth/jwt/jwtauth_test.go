package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewToken(jwtAuth, time.Hour, "root")
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "root", sub)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewToken(jwtAuth, -time.Minute, "root")
	assert.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}
