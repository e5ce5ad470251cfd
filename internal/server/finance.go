package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetFinancialSummary aggregates the inclusive [start, end] range; query
// parameters start and end are YYYY-MM-DD, end defaulting to the end of its
// day so same-day sales are included.
func (s *Server) GetFinancialSummary(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		AbortWithError(c, newValidationError("start", "invalid_start", "expected YYYY-MM-DD"))
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		AbortWithError(c, newValidationError("end", "invalid_end", "expected YYYY-MM-DD"))
		return
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	c.JSON(http.StatusOK, gin.H{"data": s.finance.GetSummary(start, end)})
}
