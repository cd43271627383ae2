package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantOrigin  string
		wantMethods bool
		wantCreds   bool
	}{
		{"allowed origin", []string{"http://localhost:5173/"}, http.MethodGet, "http://localhost:5173", false, http.StatusOK, "http://localhost:5173", false, true},
		{"disallowed origin", []string{"http://localhost:5173"}, http.MethodGet, "http://evil.test", false, http.StatusOK, "", false, false},
		{"preflight allowed", []string{"http://localhost:5173"}, http.MethodOptions, "http://localhost:5173", true, http.StatusNoContent, "http://localhost:5173", true, true},
		{"preflight disallowed", []string{"http://localhost:5173"}, http.MethodOptions, "http://evil.test", true, http.StatusNoContent, "", false, false},
		{"wildcard", []string{"*"}, http.MethodPost, "http://anywhere.test", false, http.StatusOK, "*", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.origins)(okHandler)
			req := httptest.NewRequest(tt.method, "http://test/api/attend", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods") != "")
			assert.Equal(t, tt.wantCreds, rr.Header().Get("Access-Control-Allow-Credentials") == "true")
			assert.Equal(t, "Origin", rr.Header().Get("Vary"))
		})
	}
}
