package services

import (
	"testing"
	"time"

	"salesdash/internal/config"

	"github.com/stretchr/testify/suite"
)

type TokenServiceSuite struct {
	suite.Suite
	service TokenServiceInterface
	cfg     config.JWTConfig
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceSuite))
}

func (s *TokenServiceSuite) SetupTest() {
	s.cfg = config.JWTConfig{
		Secret:        "test-secret-key",
		Issuer:        "salesdash-api",
		TokenDuration: time.Hour,
	}
	s.service = NewTokenService(&s.cfg)
}

func (s *TokenServiceSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken("admin")
	s.NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateToken(token)
	s.NoError(err)
	s.Equal("admin", claims.Username)
	s.Equal("admin", claims.Subject)
	s.Equal("salesdash-api", claims.Issuer)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceSuite) TestGenerateToken_EmptyUsername() {
	_, _, err := s.service.GenerateToken("")
	s.Error(err)
}

func (s *TokenServiceSuite) TestValidateToken_Empty() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceSuite) TestValidateToken_Garbage() {
	_, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestValidateToken_WrongSecret() {
	other := NewTokenService(&config.JWTConfig{
		Secret:        "different-secret",
		Issuer:        s.cfg.Issuer,
		TokenDuration: time.Hour,
	})
	token, _, err := other.GenerateToken("admin")
	s.NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestValidateToken_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		Secret:        s.cfg.Secret,
		Issuer:        "someone-else",
		TokenDuration: time.Hour,
	})
	token, _, err := other.GenerateToken("admin")
	s.NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceSuite) TestValidateToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		Secret:        s.cfg.Secret,
		Issuer:        s.cfg.Issuer,
		TokenDuration: -time.Hour,
	})
	token, _, err := expired.GenerateToken("admin")
	s.NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc123")
	s.NoError(err)
	s.Equal("abc123", token)

	token, err = s.service.ExtractTokenFromHeader("bearer abc123")
	s.NoError(err)
	s.Equal("abc123", token)

	for _, header := range []string{"", "Basic abc123", "Bearer", "Bearer "} {
		_, err := s.service.ExtractTokenFromHeader(header)
		s.ErrorIs(err, ErrInvalidAuthHeader, "header: %q", header)
	}
}
