package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/service/customer"
)

type Auth struct {
	customerProvider CustomerProvider
	passwordComparer PasswordComparer
	jwtSecret        []byte
	tokenTTL         time.Duration
}

func New(
	customerProvider CustomerProvider,
	passwordComparer PasswordComparer,
	jwtSecret string,
	tokenTTL time.Duration,
) *Auth {
	return &Auth{
		customerProvider: customerProvider,
		passwordComparer: passwordComparer,
		jwtSecret:        []byte(jwtSecret),
		tokenTTL:         tokenTTL,
	}
}

type tokenClaims struct {
	CustomerCode string `json:"customer_code"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Auth) Login(ctx context.Context, customerCode, password string) (*entities.AuthToken, error) {
	if strings.TrimSpace(customerCode) == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	account, err := s.customerProvider.GetByCode(ctx, customerCode)
	if err != nil {
		// не раскрываем, существует ли код клиента
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get customer for login: %w", err)
	}

	if err := s.passwordComparer.Compare(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if account.Status != entities.CustomerActive {
		return nil, ErrCustomerInactive
	}

	expiresAt := time.Now().UTC().Add(s.tokenTTL)
	claims := tokenClaims{
		CustomerCode: account.CustomerCode,
		Role:         account.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &entities.AuthToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Auth) ParseToken(tokenString string) (*entities.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &entities.TokenClaims{
		CustomerID:   claims.Subject,
		CustomerCode: claims.CustomerCode,
		Role:         entities.CustomerRoleType(claims.Role),
	}, nil
}
