package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"message_board/internal/apperrors"
	"message_board/internal/metrics"
	"message_board/internal/models"
	"message_board/internal/repository"
	"message_board/internal/utils"
)

// SubmitInput 是訪客送出的欄位加上從請求取得的資訊
type SubmitInput struct {
	Email     string
	Username  string
	Message   string
	IP        string
	UserAgent string
}

type MessageService struct {
	log         *zap.Logger
	messageRepo repository.MessageRepository
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewMessageService(log *zap.Logger, messageRepo repository.MessageRepository, m *metrics.Metrics) *MessageService {
	return &MessageService{
		log:         log,
		messageRepo: messageRepo,
		metrics:     m,
		now:         time.Now,
	}
}

// Submit 驗證並寫入一則新留言。三個欄位去除空白後任何一個為空就不寫入。
func (s *MessageService) Submit(ctx context.Context, input SubmitInput) (*models.Message, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	text := strings.TrimSpace(input.Message)

	if email == "" || username == "" || text == "" {
		return nil, apperrors.ErrMissingFields
	}

	message := models.NewMessage(email, username, text, input.IP, utils.DeviceSummary(input.UserAgent), s.now().UTC())
	if err := s.messageRepo.Create(ctx, &message); err != nil {
		return nil, err
	}

	s.metrics.MessagesSubmitted.Inc()
	return &message, nil
}

// List 回傳所有留言，最新的在前
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.FindAll(ctx)
}

// Reply 設定（或覆寫）留言的回覆。reply 為 nil 代表請求中沒有回覆欄位。
// 找不到留言時回傳 apperrors.ErrMessageNotFound，由呼叫端決定是否忽略。
func (s *MessageService) Reply(ctx context.Context, id string, reply *string) error {
	if reply == nil {
		return apperrors.ErrMissingReply
	}

	err := s.messageRepo.UpdateReply(ctx, id, *reply)
	switch {
	case err == nil:
		s.metrics.Replies.WithLabelValues("updated").Inc()
	case errors.Is(err, apperrors.ErrMessageNotFound):
		s.metrics.Replies.WithLabelValues("not_found").Inc()
		s.log.Info("reply target not found", zap.String("id", id))
	}

	return err
}
