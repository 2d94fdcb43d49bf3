// Package api 處理 HTTP 請求路由和處理。
//
// 這個包註冊所有公開與管理員的路由，handlers 子包負責將 HTTP 請求轉換為服務調用。
package api
