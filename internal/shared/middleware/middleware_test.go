package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func accessClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":  float64(7),
		"username": "anna",
		"role":     role,
		"type":     "access",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
}

func serve(handlers ...gin.HandlerFunc) (*gin.Engine, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/protected", chain...)
	return router, httptest.NewRecorder()
}

func TestJWTAuthSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var gotUserID uint
	var gotRole string
	router.GET("/protected", JWTAuth(testSecret), func(c *gin.Context) {
		gotUserID = c.MustGet("user_id").(uint)
		gotRole = c.MustGet("user_role").(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims("USER")))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUserID != 7 {
		t.Errorf("user_id = %d, want 7", gotUserID)
	}
	if gotRole != "USER" {
		t.Errorf("user_role = %q, want USER", gotRole)
	}
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	claims := accessClaims("USER")
	claims["type"] = "refresh"

	router, w := serve(JWTAuth(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, w := serve(JWTAuth(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", "ADMIN", http.StatusOK},
		{"user forbidden", "USER", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, w := serve(JWTAuth(testSecret), RequireAdmin())
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims(tt.role)))
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	router, w := serve(RequireAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
