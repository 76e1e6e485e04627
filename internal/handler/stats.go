package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach/internal/service"
)

// StatsHandler serves the admin dashboard counters
type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/admin/stats. Degraded sources show up as zero counts
// rather than an error response.
func (h *StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.stats.Aggregate(c.Request.Context())})
}
