package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authorizer 判斷一個 session token 是否具有管理員權限
type Authorizer interface {
	Authorize(token string) bool
}

// AdminRequired 是一個 Gin 中間件，檢查 session cookie 中的 admin 旗標；
// 未登入時導向登入頁，不回傳錯誤。
func AdminRequired(auth Authorizer, cookieName, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || !auth.Authorize(token) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
