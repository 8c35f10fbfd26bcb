package utils

import (
	"net/http"

	"github.com/et-services/quoterelay/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends {"ok":true}
func HandleSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse())
}

// HandleSpam sends {"ok":true,"spam":true}
func HandleSpam(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSpamResponse())
}
