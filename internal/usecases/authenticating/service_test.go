package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/analytics-bot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-bot-api/internal/config"
	"github.com/vfg2006/analytics-bot-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_LoginOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOperatorRepo := mocks.NewMockOperatorRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}

	service := &Service{
		operatorRepo: mockOperatorRepo,
		cfg:          cfg,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	operator := &domain.Operator{
		ID:           "abc123",
		Name:         "Admin",
		Email:        "admin@localhost",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func()
		expectedErr error
	}{
		{
			name:     "Credenciais corretas - deve retornar token",
			email:    "admin@localhost",
			password: "correct-password",
			setup: func() {
				mockOperatorRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@localhost").
					Return(operator, nil)
			},
		},
		{
			name:     "Email com maiúsculas e espaços - deve normalizar antes da consulta",
			email:    "  Admin@Localhost  ",
			password: "correct-password",
			setup: func() {
				mockOperatorRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@localhost").
					Return(operator, nil)
			},
		},
		{
			name:     "Senha incorreta - deve retornar erro de credenciais",
			email:    "admin@localhost",
			password: "wrong-password",
			setup: func() {
				mockOperatorRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@localhost").
					Return(operator, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Operador inexistente",
			email:    "ghost@localhost",
			password: "whatever",
			setup: func() {
				mockOperatorRepo.EXPECT().
					GetByEmail(gomock.Any(), "ghost@localhost").
					Return(nil, nil)
			},
			expectedErr: ErrOperatorNotFound,
		},
		{
			name:        "Email vazio",
			email:       "",
			password:    "whatever",
			setup:       func() {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:        "Senha vazia",
			email:       "admin@localhost",
			password:    "",
			setup:       func() {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginOperator(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOperatorRepo := mocks.NewMockOperatorRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}

	service := &Service{
		operatorRepo: mockOperatorRepo,
		cfg:          cfg,
	}

	operator := &domain.Operator{
		ID:    "abc123",
		Name:  "Admin",
		Email: "admin@localhost",
	}

	t.Run("Token emitido pelo próprio serviço deve validar", func(t *testing.T) {
		token, err := generateJWT(operator, cfg.Auth.Secret)
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "abc123", claims.OperatorID)
		assert.Equal(t, "Admin", claims.OperatorName)
		assert.Equal(t, "admin@localhost", claims.OperatorEmail)
	})

	t.Run("Token assinado com outro segredo deve falhar", func(t *testing.T) {
		token, err := generateJWT(operator, "another-secret")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Token malformado deve falhar", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestService_GetOperatorProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOperatorRepo := mocks.NewMockOperatorRepository(ctrl)

	service := &Service{
		operatorRepo: mockOperatorRepo,
		cfg:          &config.Config{},
	}

	t.Run("Perfil nunca expõe o hash da senha", func(t *testing.T) {
		mockOperatorRepo.EXPECT().
			GetByEmail(gomock.Any(), "admin@localhost").
			Return(&domain.Operator{
				ID:           "abc123",
				Email:        "admin@localhost",
				PasswordHash: "$2a$10$hash",
			}, nil)

		profile, err := service.GetOperatorProfile(context.Background(), "admin@localhost")
		assert.NoError(t, err)
		assert.Empty(t, profile.PasswordHash)
	})

	t.Run("Operador inexistente", func(t *testing.T) {
		mockOperatorRepo.EXPECT().
			GetByEmail(gomock.Any(), "ghost@localhost").
			Return(nil, nil)

		_, err := service.GetOperatorProfile(context.Background(), "ghost@localhost")
		assert.ErrorIs(t, err, ErrOperatorNotFound)
	})
}
