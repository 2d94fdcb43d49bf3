package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"message_board/internal/apperrors"
	"message_board/internal/models"
	"message_board/internal/service"
	"message_board/internal/utils"
)

// MessageHandler 處理訪客送出留言與公開的讀取
type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SubmitInput 同時接受 JSON 與表單
type SubmitInput struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Message  string `json:"message" form:"message"`
}

// Index 公開首頁，只顯示公開欄位
func (h *MessageHandler) Index(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"messages": models.PublicMessages(messages),
	})
}

// Submit 處理訪客留言
func (h *MessageHandler) Submit(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
		return
	}

	message, err := h.messageService.Submit(c.Request.Context(), service.SubmitInput{
		Email:     input.Email,
		Username:  input.Username,
		Message:   input.Message,
		IP:        utils.ClientIP(c.GetHeader(utils.ForwardedForHeader), c.RemoteIP()),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message.Public())
}

// ListMessages 公開的 JSON 留言列表
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PublicMessages(messages))
}
