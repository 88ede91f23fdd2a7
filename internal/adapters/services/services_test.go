package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/adapters/services"
	portsServices "notehub/internal/ports/services"
	"notehub/internal/session"
)

const testSecret = "test-secret-key"

func TestJWTRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret, time.Hour)

	sess := session.Session{UserID: "user-1", Email: "a@b.dev"}

	token, err := svc.GenerateAccessToken(ctx, sess)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestJWTValidateRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret, time.Hour)

	_, err := svc.ValidateAccessToken(ctx, "not-a-token")
	require.ErrorIs(t, err, portsServices.ErrInvalidToken)
}

func TestJWTValidateRejectsWrongKey(t *testing.T) {
	ctx := context.Background()
	issuer := services.NewJWT(testSecret, time.Hour)
	verifier := services.NewJWT("another-secret", time.Hour)

	token, err := issuer.GenerateAccessToken(ctx, session.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(ctx, token)
	require.ErrorIs(t, err, portsServices.ErrInvalidToken)
}

func TestJWTValidateRejectsExpired(t *testing.T) {
	ctx := context.Background()
	svc := services.NewJWT(testSecret, -time.Minute)

	token, err := svc.GenerateAccessToken(ctx, session.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(ctx, token)
	require.ErrorIs(t, err, portsServices.ErrExpiredToken)
}

func TestBcryptHashAndVerify(t *testing.T) {
	svc := services.NewBcrypt(4)

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.Verify(hash, "correct horse battery staple"))
	assert.False(t, svc.Verify(hash, "wrong password"))
	assert.False(t, svc.Verify("not-a-hash", "anything"))
}
