package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestJWTValidatorValid(t *testing.T) {
	t.Parallel()

	v := NewJWTValidator(testSecret)
	token := signToken(t, testSecret, Claims{
		Roles:  []string{"manager"},
		Scopes: []string{"orders:readwrite"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := v.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-7" {
		t.Fatalf("subject = %q, expected user-7", claims.Subject)
	}
	if !claims.HasScope("orders:readwrite") {
		t.Fatal("expected scope to be granted")
	}
}

func TestJWTValidatorRejections(t *testing.T) {
	t.Parallel()

	v := NewJWTValidator(testSecret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "empty", token: "", expected: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", expected: ErrInvalidToken},
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7", ExpiresAt: future},
			}),
			expected: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: signToken(t, testSecret, Claims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}),
			expected: ErrInvalidToken,
		},
		{
			name: "expired",
			token: signToken(t, testSecret, Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-7",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
			expected: ErrInvalidToken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.token)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestHasScope(t *testing.T) {
	t.Parallel()

	claims := &Claims{Scopes: []string{" Orders:ReadWrite ", "menus:read"}}
	if !claims.HasScope("orders:readwrite") {
		t.Fatal("scope comparison must be case-insensitive and trimmed")
	}
	if claims.HasScope("admin") {
		t.Fatal("unexpected scope grant")
	}
}
