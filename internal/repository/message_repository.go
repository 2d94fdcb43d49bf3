package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"message_board/internal/apperrors"
	"message_board/internal/models"
	"message_board/internal/storage"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindAll(ctx context.Context) ([]models.Message, error) // 依建立時間由新到舊
	UpdateReply(ctx context.Context, id, reply string) error
}

type messageRepository struct {
	db *storage.DB
}

func NewMessageRepository(db *storage.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// UpdateReply 單一 UPDATE 完成，不做先讀後寫。
// id 格式錯誤或找不到資料時回傳 apperrors.ErrMessageNotFound。
func (r *messageRepository) UpdateReply(ctx context.Context, id, reply string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", apperrors.ErrMessageNotFound, id)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("reply", reply)
	if result.Error != nil {
		return fmt.Errorf("update reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMessageNotFound, id)
	}

	return nil
}
