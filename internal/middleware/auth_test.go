package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"camerashop-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "s3cret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestTokenVerifier_Verify(t *testing.T) {
	uid := uuid.New()
	v := middleware.NewTokenVerifier(secret, "auth-service", "")

	good := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": uid.String(), "role": middleware.RoleAdmin, "iss": "auth-service",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	claims, err := v.Verify(good)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, middleware.RoleAdmin, claims.Role)

	tests := map[string]string{
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
			"sub": uid.String(), "iss": "auth-service", "exp": time.Now().Add(time.Minute).Unix(),
		}),
		"expired": sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": uid.String(), "iss": "auth-service", "exp": time.Now().Add(-time.Minute).Unix(),
		}),
		"no expiry": sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": uid.String(), "iss": "auth-service",
		}),
		"wrong issuer": sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": uid.String(), "iss": "someone", "exp": time.Now().Add(time.Minute).Unix(),
		}),
		"bad subject": sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": "42", "iss": "auth-service", "exp": time.Now().Add(time.Minute).Unix(),
		}),
		"wrong alg": sign(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{
			"sub": uid.String(), "iss": "auth-service", "exp": time.Now().Add(time.Minute).Unix(),
		}),
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(tok)
			assert.Error(t, err)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc.def.ghi":        "abc.def.ghi",
		`Bearer "abc.def.ghi"`:      "abc.def.ghi",
		"bearer abc.def.ghi, extra": "abc.def.ghi",
		"Bearer abc.def.ghi junk":   "abc.def.ghi",
	}
	for in, want := range cases {
		got, ok := middleware.ExtractBearerToken(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := middleware.ExtractBearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = middleware.ExtractBearerToken("Bearer")
	assert.False(t, ok)
}

func TestAuthRequiredAndAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := middleware.NewTokenVerifier(secret, "", "")

	r := gin.New()
	r.GET("/me", middleware.AuthRequired(v, zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserID(c).String())
	})
	r.GET("/admin", middleware.AuthRequired(v, zap.NewNop()), middleware.AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	uid := uuid.New()
	user := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": uid.String(), "role": "ROLE_USER", "exp": time.Now().Add(time.Minute).Unix(),
	})
	admin := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": uuid.NewString(), "role": middleware.RoleAdmin, "exp": time.Now().Add(time.Minute).Unix(),
	})

	call := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := call("/me", user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uid.String(), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call("/me", "").Code)
	assert.Equal(t, http.StatusForbidden, call("/admin", user).Code)
	assert.Equal(t, http.StatusOK, call("/admin", admin).Code)
}
