package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bowya123/swiggybackend/auth"
	"github.com/Bowya123/swiggybackend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.GetUserID(c)})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"))
	otherTokens := auth.NewTokenService([]byte("other-secret"))
	r := newTestRouter(tokens)

	valid, err := tokens.Issue("64f1b2a3c4d5e6f7a8b9c0d1")
	require.NoError(t, err)
	forged, err := otherTokens.Issue("64f1b2a3c4d5e6f7a8b9c0d1")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"bare token without scheme", valid, http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
		{"forged token", "Bearer " + forged, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized", body["message"])
			} else {
				assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d1", body["userId"])
			}
		})
	}
}
