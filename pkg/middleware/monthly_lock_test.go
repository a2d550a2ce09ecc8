package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/pkg/auth"
	"github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

type fakeChecker struct {
	locked bool
	err    error
}

func (f fakeChecker) IsLocked(ctx context.Context, companyID string) (bool, error) {
	return f.locked, f.err
}

func TestMonthlyLockMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		checker    fakeChecker
		role       string
		company    string
		wantStatus int
		wantHeader string
	}{
		{"liberado", fakeChecker{}, "vendedor", "31501279000110", http.StatusOK, ""},
		{"bloqueado para vendedor", fakeChecker{locked: true}, "vendedor", "31501279000110", http.StatusLocked, ""},
		{"admin passa com aviso", fakeChecker{locked: true}, "admin", "31501279000110", http.StatusOK, "locked"},
		{"sem empresa", fakeChecker{locked: true}, "vendedor", "", http.StatusOK, ""},
		{"erro na verificação", fakeChecker{err: errors.New("falha")}, "vendedor", "31501279000110", http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) {
				c.Set(auth.ContextUserRole, tt.role)
				if tt.company != "" {
					c.Set(tenant.ContextKey, tt.company)
				}
			}, MonthlyLockMiddleware(tt.checker, "admin"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get(LockHeader); got != tt.wantHeader {
				t.Errorf("cabeçalho = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}
