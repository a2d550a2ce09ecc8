package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vcontrol-pro/internal/domain/user"
	"github.com/hugohenrick/vcontrol-pro/pkg/tenant"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	if _, err := NewJWTService("", time.Hour); !errors.Is(err, ErrMissingJWTKey) {
		t.Errorf("esperava ErrMissingJWTKey, obteve %v", err)
	}
}

func TestGenerateAndValidate(t *testing.T) {
	s, err := NewJWTService("segredo", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	u := &user.User{ID: 3, Name: "Gerente", Login: "gerente", Role: "gerente"}

	token, err := s.GenerateToken(u, "31501279000110", "55482599000139")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 3 || claims.HomeCompany != "31501279000110" || claims.CompanyID != "55482599000139" || claims.Role != "gerente" {
		t.Errorf("claims incorretas: %+v", claims)
	}
	if claims.ID == "" {
		t.Errorf("token sem jti")
	}

	other, _ := NewJWTService("outro", time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("assinatura de outra chave deveria falhar: %v", err)
	}
}

func TestRefreshToken_AcceptsExpired(t *testing.T) {
	s, _ := NewJWTService("segredo", time.Hour)
	expired := &JWTService{secretKey: s.secretKey, expiration: -time.Minute}
	token, err := expired.GenerateToken(&user.User{ID: 1, Login: "admin", Role: "admin"}, "31501279000110", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("esperava ErrExpiredToken, obteve %v", err)
	}

	renewed, err := s.RefreshToken(token)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := s.ValidateToken(renewed)
	if err != nil || claims.Login != "admin" {
		t.Errorf("token renovado inválido: %+v, %v", claims, err)
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _ := NewJWTService("segredo", time.Hour)
	token, _ := s.GenerateToken(&user.User{ID: 2, Name: "Vendedor", Login: "vendedor", Role: "vendedor"}, "31501279000110", "31501279000200")

	router := gin.New()
	router.GET("/me", JWTAuthMiddleware(s), func(c *gin.Context) {
		cu := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"id":      cu.ID,
			"company": cu.CompanyID,
			"ctx":     tenant.CompanyIDFromContext(c.Request.Context()),
		})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"sem cabeçalho", "", http.StatusUnauthorized},
		{"formato inválido", "Token " + token, http.StatusUnauthorized},
		{"token inválido", "Bearer abc", http.StatusUnauthorized},
		{"token válido", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK && w.Body.String() != `{"company":"31501279000200","ctx":"31501279000200","id":2}` {
				t.Errorf("corpo inesperado: %s", w.Body.String())
			}
		})
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set(ContextUserRole, c.Query("role"))
	}, RoleAuthMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for role, want := range map[string]int{"admin": http.StatusNoContent, "gerente": http.StatusForbidden, "": http.StatusUnauthorized} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?role="+role, nil))
		if w.Code != want {
			t.Errorf("papel %q: status = %d, want %d", role, w.Code, want)
		}
	}
}
