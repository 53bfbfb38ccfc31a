// controllers/records.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barbertrack-backend/config"
	"barbertrack-backend/models"
	"barbertrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateRecordInput defines the expected JSON structure for logging a service
type CreateRecordInput struct {
	Name  string `json:"name" binding:"required"`
	Price *int64 `json:"price" binding:"required"`
}

// ownerFromContext resolves the authenticated user's UUID set by the auth
// middleware.
func ownerFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetCatalog returns the fixed service type catalog
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, config.ServiceCatalog)
}

// CreateRecord logs a completed service. The server stamps id, owner and
// timestamp; records are immutable afterwards.
func CreateRecord(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var input CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Price validation happens here at the write boundary, never in the
	// aggregation layer.
	if *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
		return
	}

	record := models.ServiceRecord{
		UserID:    ownerID,
		Name:      input.Name,
		Price:     *input.Price,
		Timestamp: time.Now().In(config.ViewLocation()),
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecords retrieves all of the owner's records, most recent first
func GetRecords(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var records []models.ServiceRecord
	if err := config.DB.Where("user_id = ?", ownerID).
		Order("timestamp DESC").
		Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteRecord removes one record. Ownership is enforced by the operation
// itself: a record that exists but belongs to another owner is rejected with
// 403, not silently skipped.
func DeleteRecord(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var record models.ServiceRecord
	if err := config.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if record.UserID != ownerID {
		utils.RespondWithError(c, http.StatusForbidden, "Record belongs to another user")
		return
	}

	if err := config.DB.Delete(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// loadRecords is the shared read path for the aggregation endpoints: the
// owner's full record list, timestamp descending, aggregated in memory.
func loadRecords(ownerID uuid.UUID) ([]models.ServiceRecord, error) {
	var records []models.ServiceRecord
	err := config.DB.Where("user_id = ?", ownerID).
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}
