package middleware

import (
	deliverycontext "its/internal/delivery/context"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/service"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Keys under which the authenticated principal is stored on echo.Context.
const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	jwt      echo.MiddlewareFunc
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
// Token parsing is delegated to the TokenService so the signing rules live in one place.
func NewAuthMiddleware(tokenSvc service.TokenService) (*AuthMiddleware, error) {
	m := &AuthMiddleware{tokenSvc: tokenSvc}

	jwtMiddleware, err := echojwt.Config{
		ContextKey:  ContextKeyClaims,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, auth string) (any, error) {
			return m.tokenSvc.ValidateToken(auth)
		},
		SuccessHandler: setPrincipal,
		ErrorHandler: func(_ echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
			}

			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		},
	}.ToMiddleware()
	if err != nil {
		return nil, errors.Wrap(err, "build jwt middleware")
	}
	m.jwt = jwtMiddleware

	return m, nil
}

// Authenticate validates the bearer access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.jwt(next)
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return domainerrors.ErrUnauthenticated.WithDetails("role information missing")
			}

			if role != requiredRole {
				return domainerrors.ErrPermissionDenied.WithDetails("require '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}

func setPrincipal(c echo.Context) {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
	if !ok {
		return
	}

	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyUsername, claims.Username)
	c.Set(ContextKeyRole, entity.ParseRole(claims.Role))

	ctx := deliverycontext.WithPrincipal(c.Request().Context(), claims.Username)
	c.SetRequest(c.Request().WithContext(ctx))
}

// CurrentUsername returns the username of the authenticated caller.
func CurrentUsername(c echo.Context) (string, error) {
	username, ok := c.Get(ContextKeyUsername).(string)
	if !ok || username == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("no authenticated user on request")
	}

	return username, nil
}
