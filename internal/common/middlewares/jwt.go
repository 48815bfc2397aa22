package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/hms-console/internal/common/response"
	"github.com/c14220110/hms-console/pkg/utils"
)

// ContextKeyClaims is the echo.Context key holding *utils.Claims.
const ContextKeyClaims = "claims"

// JWTMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores its claims on the context.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return response.JSON(c, http.StatusUnauthorized, "Authorization header missing", nil)
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return response.JSON(c, http.StatusUnauthorized, "Invalid authorization header", nil)
			}

			claims, err := utils.ValidateJWTToken(secret, parts[1])
			if err != nil {
				return response.JSON(c, http.StatusUnauthorized, "Invalid token: "+err.Error(), nil)
			}
			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims, if the request carried any.
func ClaimsFrom(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*utils.Claims)
	return claims, ok
}
