package service

import (
	"go.uber.org/zap"

	"message_board/internal/metrics"
	"message_board/internal/repository"
)

type Services struct {
	MessageService *MessageService
	AuthService    *AuthService
}

func NewServices(log *zap.Logger, repos *repository.Repositories, authCfg AuthConfig, m *metrics.Metrics) (*Services, error) {
	authService, err := NewAuthService(authCfg, m)
	if err != nil {
		return nil, err
	}

	return &Services{
		MessageService: NewMessageService(log, repos.Message, m),
		AuthService:    authService,
	}, nil
}
