// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, subject string) string {
	t.Helper()

	claims := &jwt.RegisteredClaims{
		Issuer:    "go-pass-vault",
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseUserIDFromJWT_Success(t *testing.T) {
	userID, err := ParseUserIDFromJWT(signTestToken(t, "123"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != 123 {
		t.Errorf("expected userID 123, got %d", userID)
	}
}

func TestParseUserIDFromJWT_Errors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		if _, err := ParseUserIDFromJWT("not.a.token"); err == nil {
			t.Error("expected error for malformed token")
		}
	})

	t.Run("empty subject", func(t *testing.T) {
		_, err := ParseUserIDFromJWT(signTestToken(t, ""))
		if !errors.Is(err, ErrEmptySubject) {
			t.Errorf("expected ErrEmptySubject, got %v", err)
		}
	})

	t.Run("non numeric subject", func(t *testing.T) {
		if _, err := ParseUserIDFromJWT(signTestToken(t, "alice")); err == nil {
			t.Error("expected error for non numeric subject")
		}
	})
}
