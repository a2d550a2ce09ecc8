package tenant

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeValidator struct {
	known map[string]bool
	err   error
}

func (f fakeValidator) Exists(companyID string) (bool, error) {
	return f.known[companyID], f.err
}

func TestRequireCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)
	known := map[string]bool{"31501279000110": true}

	tests := []struct {
		name      string
		companyID string
		validator fakeValidator
		want      int
	}{
		{"sem empresa", "", fakeValidator{known: known}, http.StatusBadRequest},
		{"empresa desconhecida", "123", fakeValidator{known: known}, http.StatusForbidden},
		{"falha na validação", "31501279000110", fakeValidator{err: errors.New("falha")}, http.StatusInternalServerError},
		{"empresa cadastrada", "31501279000110", fakeValidator{known: known}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) {
				if tt.companyID != "" {
					c.Set(ContextKey, tt.companyID)
				}
			}, RequireCompany(tt.validator), func(c *gin.Context) {
				c.String(http.StatusOK, CompanyID(c))
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
