package handlers

import (
	"net/http"

	"github.com/et-services/quoterelay/internal/api/dto/common"
	"github.com/et-services/quoterelay/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. The relay has no backing store to probe.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.StatusResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
