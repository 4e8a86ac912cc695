package http

import (
	"net/http"
	"strings"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/generated/servers"
	"foodcourt/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// actorClaims are the token claims this service trusts. The user service
// issues the token; the user id travels in the registered subject claim.
type actorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// ActorMiddleware authenticates the request's bearer token and stores the
// resulting actor in the echo context. Requests without a valid token are
// rejected before any handler runs.
func ActorMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requester, err := authenticate(ctx.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing credentials",
				})
			}

			ctx.Set(actorContextKey, requester)
			return next(ctx)
		}
	}
}

func authenticate(header string, secret []byte) (actor.Actor, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError("bearer token")
	}

	var claims actorClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("bearer token", err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(userID, role)
}

// actorFromContext retrieves the authenticated actor placed by ActorMiddleware.
func actorFromContext(ctx echo.Context) (actor.Actor, error) {
	requester, ok := ctx.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, errs.NewValueIsRequiredError("actor")
	}
	return requester, nil
}
