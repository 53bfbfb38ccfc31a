// controllers/calendar.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"barbertrack-backend/calendar"
	"barbertrack-backend/config"
	"barbertrack-backend/earnings"
	"barbertrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetMonth returns the Sunday-first grid for /api/calendar/month/:year/:month:
// leading blank cells for alignment, then one cell per day annotated with
// that day's total and count.
func GetMonth(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
		return
	}

	records, err := loadRecords(ownerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	loc := config.ViewLocation()
	ym := calendar.YearMonth{Year: year, Month: time.Month(month)}
	cells := calendar.MonthGrid(ym, records, loc)

	c.JSON(http.StatusOK, gin.H{
		"month":    ym.String(),
		"previous": ym.Previous().String(),
		"next":     ym.Next().String(),
		"cells":    cells,
	})
}

// GetDay returns the detail list and total for one date
// (/api/calendar/day/:date, date as 2006-01-02). Order follows the store's
// timestamp-descending list; nothing here reorders it.
func GetDay(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	loc := config.ViewLocation()
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), loc)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	records, err := loadRecords(ownerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	dayRecords := calendar.SelectDate(records, date, loc)
	summary := earnings.SumAndCount(dayRecords)

	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format("2006-01-02"),
		"total":   summary.Total,
		"count":   summary.Count,
		"records": dayRecords,
	})
}
