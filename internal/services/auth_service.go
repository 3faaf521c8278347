package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

type AuthService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func NewAuthService(secret string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		secretKey: []byte(secret),
		ttl:       TokenTTL,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *AuthService) GenerateToken(userID string) (string, error) {
	issuedAt := s.now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error generating token")
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks signature, algorithm and expiry and returns the
// user id carried by the token.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())

	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", errInvalidToken
	}

	return claims.UserID, nil
}
