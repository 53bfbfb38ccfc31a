// services/summary_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"barbertrack-backend/config"
	"barbertrack-backend/earnings"
	"barbertrack-backend/models"
	"barbertrack-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type SummaryService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &SummaryService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends each opted-in user their day's earnings every evening
// at 21:00 in the viewing timezone.
func (s *SummaryService) StartScheduler() {
	c := cron.New(cron.WithLocation(config.ViewLocation()))

	if _, err := c.AddFunc("0 21 * * *", func() {
		s.SendDailySummaries(time.Now())
	}); err != nil {
		log.Printf("Failed to schedule daily summaries: %v", err)
		return
	}

	c.Start()
	log.Println("Daily summary scheduler started")
}

func (s *SummaryService) SendDailySummaries(now time.Time) {
	log.Println("Starting daily summary processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ? AND daily_summary = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserSummary(user, now)
	}

	log.Println("Daily summary processing completed")
}

func (s *SummaryService) ProcessUserSummary(user models.User, now time.Time) {
	loc := config.ViewLocation()
	day := utils.BeginningOfDay(now.In(loc))

	var records []models.ServiceRecord
	if err := s.db.Where("user_id = ? AND timestamp >= ?", user.ID, day).
		Find(&records).Error; err != nil {
		log.Printf("User %s: failed to load today's records: %v", user.ID, err)
		return
	}

	summary := earnings.SumAndCount(earnings.FilterFromInstant(records, day))
	message := fmt.Sprintf("%s: hoy registraste %d servicios por un total de $%d CLP.",
		user.ShopName, summary.Count, summary.Total)

	// WhatsApp if the phone is E.164 with a '+', otherwise SMS
	channel := "sms"
	to := user.SummaryPhone
	if strings.HasPrefix(user.SummaryPhone, "+") {
		to = "whatsapp:" + user.SummaryPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send summary to %s: %v", user.SummaryPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Summary sent to %s, SID: %s", user.SummaryPhone, *resp.Sid)
	} else {
		log.Printf("Summary sent to %s, but no SID returned", user.SummaryPhone)
	}

	summaryLog := models.SummaryLog{
		UserID:       user.ID,
		Date:         day,
		Total:        summary.Total,
		Count:        summary.Count,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&summaryLog).Error; err != nil {
		log.Printf("Failed to log summary for user %s: %v", user.ID, err)
	}
}
