package handlers

import (
	"net/http"

	"github.com/crevo-hub/LeaderboardEngineService/internal/wss"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the leaderboard engine's HTTP surface.
func NewRouter(h *LeaderboardHandler, hub *wss.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		JSONSuccess(c, http.StatusOK, gin.H{"status": "ok"})
	})

	board := r.Group("/leaderboard")
	{
		board.GET("/months", h.ListMonths)
		board.GET("/:year/:month", h.GetSnapshot)
		board.GET("/:year/:month/csv", h.ExportCSV)
		board.POST("/refresh", h.RefreshNow)
	}

	r.GET("/users/:id/stats", h.GetUserStats)

	r.GET("/ws", gin.WrapF(wss.Handler(hub)))

	return r
}
