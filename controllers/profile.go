// controllers/profile.go
package controllers

import (
	"net/http"

	"barbertrack-backend/config"
	"barbertrack-backend/models"
	"barbertrack-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateNotificationsInput struct {
	DailySummary *bool   `json:"dailySummary"`
	SummaryPhone *string `json:"summaryPhone"`
}

type UpdateShopInput struct {
	Name     *string `json:"name"`
	ShopName *string `json:"shopName"`
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"shopName":     user.ShopName,
		"dailySummary": user.DailySummary,
		"summaryPhone": user.SummaryPhone,
	})
}

// UpdateShopProfile updates the display name and shop name
func UpdateShopProfile(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var input UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.ShopName != nil {
		user.ShopName = *input.ShopName
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// UpdateNotifications updates the daily summary settings. Turning the
// summary on requires a valid phone number.
func UpdateNotifications(c *gin.Context) {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.SummaryPhone != nil {
		if *input.SummaryPhone != "" && !utils.ValidatePhone(*input.SummaryPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		user.SummaryPhone = *input.SummaryPhone
	}
	if input.DailySummary != nil {
		if *input.DailySummary && user.SummaryPhone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "A phone number is required for the daily summary")
			return
		}
		user.DailySummary = *input.DailySummary
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Settings updated successfully",
		"dailySummary": user.DailySummary,
		"summaryPhone": user.SummaryPhone,
	})
}
