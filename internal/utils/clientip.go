package utils

import (
	"strings"
)

const ForwardedForHeader = "X-Forwarded-For"

// ClientIP 優先採用 X-Forwarded-For 的第一個位址，否則使用連線的遠端位址
func ClientIP(forwardedFor, remoteIP string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return remoteIP
}
