// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies the access tokens presented to the management API.
//
// Tokens are minted by the identity service with RS256; this process only holds
// the public key and never signs anything.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// Custom claims are abbreviated to keep the token small.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   string `json:"uid"`
	Username string `json:"unm"`
	Role     string `json:"rol"`
}

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("sec: invalid token")

// TokenVerifier checks RS256 signatures against a single public key.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier reads a PEM encoded RSA public key from disk.
func NewTokenVerifier(publicKeyPath, issuer string) (*TokenVerifier, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	return NewTokenVerifierFromPEM(publicKeyData, issuer)
}

// NewTokenVerifierFromPEM builds a verifier from PEM bytes.
func NewTokenVerifierFromPEM(publicKeyPEM []byte, issuer string) (*TokenVerifier, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenVerifier{publicKey: publicKey, issuer: issuer}, nil
}

// VerifyToken checks the signature, expiry and issuer of a JWT string.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if verifier.issuer != "" {
		options = append(options, jwt.WithIssuer(verifier.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (any, error) {
		return verifier.publicKey, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
