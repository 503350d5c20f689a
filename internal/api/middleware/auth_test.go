package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"верный токен", "secret", "secret", http.StatusNoContent},
		{"неверный токен", "secret", "wrong", http.StatusUnauthorized},
		{"без заголовка", "secret", "", http.StatusUnauthorized},
		{"пустой настроенный токен выключает API", "", "", http.StatusUnauthorized},
		{"пустой настроенный токен не совпадает с пустым заголовком", "", "secret", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuth(tt.configured)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/barbers", nil)
			if tt.header != "" {
				req.Header.Set(AdminTokenHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
