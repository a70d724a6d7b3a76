package middleware

import (
	"math"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

const unauthorizedMessage = "Unauthorized: invalid or missing token"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", unauthorizedMessage)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", unauthorizedMessage)
			return
		}

		token, err := jwt.Parse(
			strings.TrimSpace(parts[1]),
			func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", unauthorizedMessage)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", unauthorizedMessage)
			return
		}

		userID, ok := subject(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", unauthorizedMessage)
			return
		}

		rawRole, _ := claims["role"].(string)
		role, _ := account.ParseRole(rawRole)

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// subject resolves the sub claim to a positive whole user id.
func subject(claims jwt.MapClaims) (uint, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 1 || sub > math.MaxUint32 || sub != math.Trunc(sub) {
		return 0, false
	}
	return uint(sub), true
}

var forbiddenCodes = map[account.Role]string{
	account.RoleCustomer: "not_a_customer",
	account.RoleBarber:   "not_a_barber",
	account.RoleAdmin:    "not_an_admin",
}

// RequireRole lets only callers of the given role through.
func RequireRole(role account.Role) gin.HandlerFunc {
	code := forbiddenCodes[role]

	return func(c *gin.Context) {
		if CurrentIdentity(c).Role != role {
			httperr.Forbidden(c, code, httperr.Message(code))
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the caller set by AuthMiddleware, or the zero
// Identity when the request is anonymous.
func CurrentIdentity(c *gin.Context) account.Identity {
	var id account.Identity

	if v, ok := c.Get(ContextUserID); ok {
		id.UserID, _ = v.(uint)
	}
	if v, ok := c.Get(ContextUserRole); ok {
		id.Role, _ = v.(account.Role)
	}
	return id
}
