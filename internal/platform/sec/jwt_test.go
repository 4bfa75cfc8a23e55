// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

const testIssuer = "kahasolusi.test"

func newKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	return privateKey, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func sign(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims sec.AuthClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(issuer string, expiresIn time.Duration) sec.AuthClaims {
	now := time.Now()
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		UserID:   "7",
		Username: "editor",
		Role:     string(sec.RoleEditor),
	}
}

/*
TestTokenVerifier_Verify covers valid, expired, foreign-issuer and foreign-key tokens.
*/
func TestTokenVerifier_Verify(t *testing.T) {
	privateKey, publicPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)

	verifier, err := sec.NewTokenVerifierFromPEM(publicPEM, testIssuer)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		valid bool
	}{
		{"valid", sign(t, privateKey, jwt.SigningMethodRS256, claimsFor(testIssuer, time.Hour)), true},
		{"expired", sign(t, privateKey, jwt.SigningMethodRS256, claimsFor(testIssuer, -time.Hour)), false},
		{"wrong_issuer", sign(t, privateKey, jwt.SigningMethodRS256, claimsFor("someone.else", time.Hour)), false},
		{"wrong_key", sign(t, otherKey, jwt.SigningMethodRS256, claimsFor(testIssuer, time.Hour)), false},
		{"wrong_alg", sign(t, privateKey, jwt.SigningMethodRS512, claimsFor(testIssuer, time.Hour)), false},
		{"garbage", "not.a.token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyToken(tt.token)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, "7", claims.UserID)
				assert.Equal(t, string(sec.RoleEditor), claims.Role)
				return
			}
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestNewTokenVerifier_File loads the key from disk.
*/
func TestNewTokenVerifier_File(t *testing.T) {
	_, publicPEM := newKeyPair(t)
	path := filepath.Join(t.TempDir(), "public.pem")
	require.NoError(t, os.WriteFile(path, publicPEM, 0o600))

	_, err := sec.NewTokenVerifier(path, testIssuer)
	assert.NoError(t, err)

	_, err = sec.NewTokenVerifier(filepath.Join(t.TempDir(), "absent.pem"), testIssuer)
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast checks the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("").AtLeast(sec.UserRole("")))
	assert.False(t, sec.UserRole("member").AtLeast(sec.RoleViewer))
}
