package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/auth"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
	"github.com/medicore/hospital-api/pkg/httputil"
)

const ContextPrincipal = "principal"

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and stores the principal in the
// request context. Handlers read it back with PrincipalFromContext; there is
// no global auth state.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.RespondWithError(c, apperrors.Unauthorized(nil))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondWithError(c, apperrors.Unauthorized(nil))
			c.Abort()
			return
		}

		principal, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// RequireRole rejects requests whose principal does not carry the given
// role. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal == nil {
			httputil.RespondWithError(c, apperrors.Unauthorized(nil))
			c.Abort()
			return
		}
		if principal.Role != role {
			httputil.RespondWithError(c, apperrors.Forbidden("insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, or nil on
// unauthenticated requests.
func PrincipalFromContext(c *gin.Context) *model.Principal {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil
	}
	principal, ok := v.(*model.Principal)
	if !ok {
		return nil
	}
	return principal
}
