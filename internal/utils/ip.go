package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from proxy headers.
// Netlify's edge sets X-Nf-Client-Connection-Ip; other proxies set
// X-Real-IP or X-Forwarded-For.
func GetRealIP(c *gin.Context) string {
	for _, header := range []string{"X-Nf-Client-Connection-Ip", "X-Real-IP"} {
		if ip := strings.TrimSpace(c.GetHeader(header)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For is "client, proxy1, proxy2"; the leftmost is the client
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		clientIP, _, _ := strings.Cut(forwardedFor, ",")
		if clientIP = strings.TrimSpace(clientIP); clientIP != "" {
			return clientIP
		}
	}

	return c.ClientIP()
}
