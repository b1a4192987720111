package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Keoroanthony/go-orders/internal/auth"
)

type errorVerifier struct{}

func (errorVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	return "", errors.New("signature mismatch")
}

func setupAuthTestRouter(v auth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(auth.RequireAuth(v))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(auth.SubjectKey)})
	})
	return r
}

func performAuthRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth(t *testing.T) {

	t.Run("Admits a valid bearer token and exposes the subject", func(t *testing.T) {
		router := setupAuthTestRouter(auth.StaticVerifier{Subject: "test_user"})
		recorder := performAuthRequest(router, "Bearer some-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"subject":"test_user"}`, recorder.Body.String())
	})

	t.Run("Rejects a missing Authorization header", func(t *testing.T) {
		router := setupAuthTestRouter(auth.StaticVerifier{Subject: "test_user"})
		recorder := performAuthRequest(router, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Rejects a non-bearer scheme", func(t *testing.T) {
		router := setupAuthTestRouter(auth.StaticVerifier{Subject: "test_user"})
		recorder := performAuthRequest(router, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Rejects when verification fails", func(t *testing.T) {
		router := setupAuthTestRouter(errorVerifier{})
		recorder := performAuthRequest(router, "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "token verification failed")
	})
}
