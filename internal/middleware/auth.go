package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const UserIDKey = "user_id"

// SessionMiddleware resolves an optional bearer session token. A valid
// token sets user_id in the request context; anything else leaves the
// request anonymous. Authorization decisions belong to the services.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return next(c)
			}

			if userID := parseSubject(token, secret); userID != "" {
				c.Set(UserIDKey, userID)
			}
			return next(c)
		}
	}
}

func parseSubject(token, secret string) string {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return ""
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// SessionUserID returns the authenticated user id, or "" for anonymous
// requests.
func SessionUserID(c echo.Context) string {
	userID, _ := c.Get(UserIDKey).(string)
	return userID
}
