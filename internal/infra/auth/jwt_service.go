package auth

import (
	"time"

	"its/config"
	"its/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "its"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenTTL
	}
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an HS256 access token carrying the user's identity and role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, username, role string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := service.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		Type:     service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks signature, expiry and token type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.UserID == uuid.Nil || claims.Username == "" {
		return nil, errors.New("token is missing identity claims")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
