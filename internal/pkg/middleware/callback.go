package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/utils"
)

const (
	// CallbackSecretHeader carries the shared secret the gateway is
	// configured to send with every callback
	CallbackSecretHeader = "X-Callback-Secret"
)

// ValidateCallbackSecret middleware validates the shared secret on inbound
// gateway callbacks. Comparison is constant time.
func ValidateCallbackSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Callback secret not configured")
			}

			provided := c.Request().Header.Get(CallbackSecretHeader)
			if provided == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Callback secret is required")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid callback secret")
			}

			return next(c)
		}
	}
}
