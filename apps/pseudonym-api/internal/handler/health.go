package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/dto"
)

// HandleHealth はGET /health のハンドラー。
func (h *PseudonymHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
