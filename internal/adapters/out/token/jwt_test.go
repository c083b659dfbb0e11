package token_test

import (
	"testing"

	"eats/internal/adapters/out/token"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestJWTService_SignAndVerify(t *testing.T) {
	svc, err := token.NewJWTService("test-secret")
	require.NoError(t, err)

	userID := kernel.NewUUID()
	signed, err := svc.Sign(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	verified, err := svc.Verify(signed)
	require.NoError(t, err)
	require.True(t, verified.IsEqual(userID))
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	signer, err := token.NewJWTService("secret-a")
	require.NoError(t, err)
	verifier, err := token.NewJWTService("secret-b")
	require.NoError(t, err)

	signed, err := signer.Sign(kernel.NewUUID())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc, err := token.NewJWTService("test-secret")
	require.NoError(t, err)

	_, err = svc.Verify("not.a.token")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := token.NewJWTService("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
