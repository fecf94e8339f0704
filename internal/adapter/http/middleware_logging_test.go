package adapthttp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	s := &Server{log: log}
	r := gin.New()
	r.Use(s.loggingMiddleware())
	r.GET("/test-path", func(c *gin.Context) {
		c.String(http.StatusTeapot, "OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-path", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	out := buf.String()
	if !strings.Contains(out, "GET") || !strings.Contains(out, "/test-path") || !strings.Contains(out, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", out)
	}
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := &Server{log: logrus.New(), cookieName: DefaultSessionCookie}
	r := gin.New()
	r.Use(s.sessionMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, sessionID(c))
	})

	tests := []struct {
		name      string
		cookie    string
		wantReuse bool
	}{
		{"no cookie", "", false},
		{"malformed cookie", "not-a-uuid", false},
		{"valid cookie", "0b6c1a39-5e0e-4c5f-9d0e-8d2b1f1c6a55", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Body.String()
			issued := w.Header().Get("Set-Cookie") != ""
			if tc.wantReuse {
				if got != tc.cookie || issued {
					t.Fatalf("expected session %q reused without a new cookie, got %q (issued=%v)", tc.cookie, got, issued)
				}
				return
			}
			if got == "" || got == tc.cookie || !issued {
				t.Fatalf("expected a fresh session cookie, got %q (issued=%v)", got, issued)
			}
		})
	}
}
