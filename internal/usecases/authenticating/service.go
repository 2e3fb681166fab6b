package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"github.com/vfg2006/analytics-bot-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginOperator(ctx context.Context, email, password string) (string, error)
	GetOperatorProfile(ctx context.Context, email string) (*domain.Operator, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	operatorRepo repository.OperatorRepository
	cfg          *config.Config
}

func NewService(operatorRepo repository.OperatorRepository, cfg *config.Config) Authenticator {
	return &Service{
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

func (s *Service) LoginOperator(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar operador no banco de dados")
	}

	if operator == nil {
		return "", NewAuthError(ErrOperatorNotFound, apiErrors.ErrOperatorNotFound, "Operador não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := generateJWT(operator, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetOperatorProfile(ctx context.Context, email string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if operator == nil {
		return nil, ErrOperatorNotFound
	}

	operator.PasswordHash = ""
	return operator, nil
}

func generateJWT(operator *domain.Operator, secret string) (string, error) {
	claims := domain.Claims{
		OperatorID:    operator.ID,
		OperatorName:  operator.Name,
		OperatorEmail: operator.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
