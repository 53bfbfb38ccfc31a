// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"barbertrack-backend/config"
	"barbertrack-backend/earnings"
	"barbertrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// evaluationInstant resolves the reference "now" for window computation.
// Normally the request time; an explicit ?at=RFC3339 instant overrides it so
// clients (and tests) can pin the evaluation point. The clock is never server
// state: the UI refreshes its own instant once a minute and sends it along.
func evaluationInstant(c *gin.Context) (time.Time, bool) {
	at := c.Query("at")
	if at == "" {
		return time.Now(), true
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'at' instant, expected RFC3339")
		return time.Time{}, false
	}
	return t, true
}

// GetDashboard returns the four rolling earnings windows (today, week, month,
// year) for the authenticated owner, each with total and service count. The
// windows overlap by design; they are independent "since X" figures, not a
// partition.
func GetDashboard(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	now, ok := evaluationInstant(c)
	if !ok {
		return
	}

	records, err := loadRecords(ownerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	loc := config.ViewLocation()
	windows := earnings.Windows(records, now, loc)

	c.JSON(http.StatusOK, gin.H{
		"at":      now.In(loc),
		"today":   windows.Today,
		"week":    windows.Week,
		"month":   windows.Month,
		"year":    windows.Year,
		"records": records,
	})
}
