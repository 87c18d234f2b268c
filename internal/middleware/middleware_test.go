package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	r := testRouter()

	if w := serve(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status %d, want 401", w.Code)
	}
	if w := serve(r, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Errorf("empty bearer: status %d, want 401", w.Code)
	}
}

func TestMalformedTokenIsBadRequest(t *testing.T) {
	r := testRouter()

	if w := serve(r, "Bearer not.a.jwt"); w.Code != http.StatusBadRequest {
		t.Errorf("garbage token: status %d, want 400", w.Code)
	}
	if w := serve(r, "Basic dXNlcjpwYXNz"); w.Code != http.StatusBadRequest &&
		w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer scheme: status %d", w.Code)
	}
}

func TestExpiredTokenIsBadRequest(t *testing.T) {
	r := testRouter()
	token := signToken(t, jwt.MapClaims{
		"id":    1,
		"name":  "Ada",
		"email": "ada@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})

	if w := serve(r, "Bearer "+token); w.Code != http.StatusBadRequest {
		t.Errorf("expired token: status %d, want 400", w.Code)
	}
}

func TestWrongSignatureIsBadRequest(t *testing.T) {
	r := testRouter()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if w := serve(r, "Bearer "+signed); w.Code != http.StatusBadRequest {
		t.Errorf("wrong signature: status %d, want 400", w.Code)
	}
}

func TestValidTokenPassesClaimsThrough(t *testing.T) {
	r := testRouter()
	token := signToken(t, jwt.MapClaims{
		"id":    7,
		"name":  "Ada",
		"email": "ada@example.com",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	w := serve(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, body %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"id":7}` {
		t.Errorf("context user id body = %s, want {\"id\":7}", got)
	}
}
