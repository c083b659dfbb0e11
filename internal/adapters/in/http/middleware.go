package http

import (
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// headerToken is the request header carrying the session token.
const headerToken = "x-jwt"

// callerKey is the echo context key under which the authenticated caller is
// stored.
const callerKey = "caller"

// AuthMiddleware resolves the caller behind a session token. The token
// carries only the user id; email, role and the account's continued
// existence are checked against storage on every request. Requests without a
// token pass through anonymously — the per-route policy decides whether that
// is acceptable.
type AuthMiddleware struct {
	tokens   ports.TokenService
	profiles queries.GetProfileQueryHandler
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(tokens ports.TokenService, profiles queries.GetProfileQueryHandler) AuthMiddleware {
	return AuthMiddleware{
		tokens:   tokens,
		profiles: profiles,
	}
}

// Resolve is the echo middleware function. A present but defective token,
// or a token for a deleted account, leaves the request anonymous rather
// than failing it; protected routes then reject it with the same error an
// untokened request gets.
func (m AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(headerToken)
		if raw == "" {
			return next(c)
		}

		userID, err := m.tokens.Verify(raw)
		if err != nil {
			return next(c)
		}

		query, err := queries.NewGetProfileQuery(userID)
		if err != nil {
			return next(c)
		}

		profile, err := m.profiles.Handle(c.Request().Context(), query)
		if err != nil {
			return next(c)
		}

		caller, err := account.NewCaller(profile.ID, profile.Role)
		if err != nil {
			return next(c)
		}

		c.Set(callerKey, caller)
		return next(c)
	}
}

// callerFrom extracts the authenticated caller from the echo context.
// Returns nil for anonymous requests.
func callerFrom(c echo.Context) *account.Caller {
	v := c.Get(callerKey)
	if v == nil {
		return nil
	}

	caller, ok := v.(account.Caller)
	if !ok {
		return nil
	}

	return &caller
}
