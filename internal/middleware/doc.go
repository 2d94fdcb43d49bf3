// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 包含管理員登入檢查、請求日誌與 CORS。
package middleware
