// controllers/report.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"barbertrack-backend/config"
	"barbertrack-backend/earnings"
	"barbertrack-backend/models"
	"barbertrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue int64            `json:"currentMonthRevenue"`
	MonthGrowth         float64          `json:"monthGrowth"`
	CurrentYearRevenue  int64            `json:"currentYearRevenue"`
	YearGrowth          float64          `json:"yearGrowth"`
	TopServices         []ServiceSummary `json:"topServices"`
	QuickStats          QuickStatistics  `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

type QuickStatistics struct {
	TotalRecords  int     `json:"totalRecords"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// GetReportAnalytics returns month/year revenue with growth against the
// prior period plus a per-service breakdown, all computed in memory from the
// owner's record list.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
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
	monthStart := earnings.MonthWindow(now, loc)
	yearStart := earnings.YearWindow(now, loc)

	currentMonth := earnings.SumAndCount(earnings.FilterFromInstant(records, monthStart)).Total
	lastMonth := rc.revenueBetween(records, monthStart.AddDate(0, -1, 0), monthStart)
	currentYear := earnings.SumAndCount(earnings.FilterFromInstant(records, yearStart)).Total
	lastYear := rc.revenueBetween(records, yearStart.AddDate(-1, 0, 0), yearStart)

	summary := AnalyticsSummary{
		CurrentMonthRevenue: currentMonth,
		MonthGrowth:         rc.calculateGrowthPercentage(currentMonth, lastMonth),
		CurrentYearRevenue:  currentYear,
		YearGrowth:          rc.calculateGrowthPercentage(currentYear, lastYear),
		TopServices:         rc.topServices(earnings.FilterFromInstant(records, monthStart)),
		QuickStats:          rc.quickStatistics(records),
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

// revenueBetween totals records with start <= timestamp < end.
func (rc *ReportController) revenueBetween(records []models.ServiceRecord, start, end time.Time) int64 {
	var total int64
	for _, r := range earnings.FilterFromInstant(records, start) {
		if r.Timestamp.Before(end) {
			total += r.Price
		}
	}
	return total
}

func (rc *ReportController) calculateGrowthPercentage(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (float64(current-previous) / float64(previous)) * 100
}

func (rc *ReportController) topServices(records []models.ServiceRecord) []ServiceSummary {
	byName := make(map[string]*ServiceSummary)
	for _, r := range records {
		s, ok := byName[r.Name]
		if !ok {
			s = &ServiceSummary{Name: r.Name}
			byName[r.Name] = s
		}
		s.Count++
		s.Revenue += r.Price
	}

	summaries := make([]ServiceSummary, 0, len(byName))
	for _, s := range byName {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Revenue > summaries[j].Revenue
	})
	if len(summaries) > 4 {
		summaries = summaries[:4]
	}
	return summaries
}

func (rc *ReportController) quickStatistics(records []models.ServiceRecord) QuickStatistics {
	stats := QuickStatistics{TotalRecords: len(records)}
	if len(records) > 0 {
		total := earnings.SumAndCount(records).Total
		stats.AvgOrderValue = float64(total) / float64(len(records))
	}
	return stats
}
