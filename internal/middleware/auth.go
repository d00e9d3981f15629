package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/handlers"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
)

// UserIDContextKey is the context key under which the authenticated
// user's ID is stored.
const UserIDContextKey = "user_id"

// AuthClaims are the JWT claims issued by the external identity
// provider. The subject carries the opaque user ID; profile fields are
// optional and used only to keep the local user record fresh.
type AuthClaims struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth creates a middleware that requires a valid bearer token.
// On success the user is provisioned in the local store and the user ID
// is placed in the request context.
func RequireAuth(signingSecret []byte, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			tokenString, err := extractBearerToken(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims := &AuthClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return signingSecret, nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}
			if !token.Valid || claims.Subject == "" {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			user := &models.User{ID: claims.Subject}
			if claims.Email != "" {
				user.Email = &claims.Email
			}
			if claims.FirstName != "" {
				user.FirstName = &claims.FirstName
			}
			if claims.LastName != "" {
				user.LastName = &claims.LastName
			}
			if claims.ProfileImageURL != "" {
				user.ProfileImageURL = &claims.ProfileImageURL
			}

			if err := userRepo.EnsureExists(user); err != nil {
				slog.Error("failed to provision user from token",
					"user_id", claims.Subject,
					"error", err)
				return handlers.SendSystemError(c, err)
			}

			c.Set(UserIDContextKey, claims.Subject)

			return next(c)
		}
	}
}

func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
