package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"message_board/internal/apperrors"
	"message_board/internal/models"
	"message_board/internal/service"
	"message_board/pkg/geoip"
)

const (
	LoginPath     = "/admin"
	DashboardPath = "/dashboard"
)

// SessionOptions 決定 session cookie 的屬性
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// AdminHandler 處理管理員登入、後台與回覆
type AdminHandler struct {
	authService    *service.AuthService
	messageService *service.MessageService
	geo            geoip.GeoIP
	session        SessionOptions
}

func NewAdminHandler(authService *service.AuthService, messageService *service.MessageService, geo geoip.GeoIP, session SessionOptions) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		messageService: messageService,
		geo:            geo,
		session:        session,
	}
}

// LoginPage 顯示登入表單
func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// Login 驗證帳密，成功後寫入 session cookie 並導向後台
func (h *AdminHandler) Login(c *gin.Context) {
	token, err := h.authService.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{"error": msgInvalidCredentials})
			return
		}
		internalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, int(h.session.TTL.Seconds()), "/", "", h.session.Secure, true)
	c.Redirect(http.StatusFound, DashboardPath)
}

// Logout 清除 session cookie
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.Secure, true)
	c.Redirect(http.StatusFound, LoginPath)
}

// Dashboard 顯示所有留言，包含 ip 與裝置資訊
func (h *AdminHandler) Dashboard(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	view := make([]models.AdminMessage, 0, len(messages))
	for _, m := range messages {
		view = append(view, m.Admin(h.geo.CountryCode(m.IP)))
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{"messages": view})
}

// Reply 設定留言的回覆。找不到留言時不視為錯誤，一樣導回後台。
func (h *AdminHandler) Reply(c *gin.Context) {
	var reply *string
	if text, ok := c.GetPostForm("reply"); ok {
		reply = &text
	}

	err := h.messageService.Reply(c.Request.Context(), c.Param("id"), reply)
	switch {
	case err == nil, errors.Is(err, apperrors.ErrMessageNotFound):
		c.Redirect(http.StatusFound, DashboardPath)
	case errors.Is(err, apperrors.ErrMissingReply):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingReply})
	default:
		internalError(c, err)
	}
}
