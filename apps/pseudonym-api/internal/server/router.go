package server

import (
	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/eapsim-pseudonym/apps/pseudonym-api/internal/handler"
	"github.com/oyaguma3/eapsim-pseudonym/pkg/httputil"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.PseudonymHandler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/identity/classify", h.HandleClassify)
		v1.POST("/pseudonym/encrypt", h.HandleEncrypt)
		v1.POST("/pseudonym/decrypt", h.HandleDecrypt)
		v1.POST("/xlat", h.HandleXlat)
	}

	engine.NoRoute(func(c *gin.Context) {
		httputil.WriteError(c, httputil.NotFound("No such endpoint"))
	})
}
