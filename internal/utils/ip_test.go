package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"netlify header", map[string]string{"X-Nf-Client-Connection-Ip": "9.9.9.9", "X-Real-IP": "1.1.1.1"}, "9.9.9.9"},
		{"real ip", map[string]string{"X-Real-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, "1.1.1.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "2.2.2.2, 10.0.0.1"}, "2.2.2.2"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("POST", "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetRealIP(c))
		})
	}
}
