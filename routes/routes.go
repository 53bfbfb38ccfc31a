package routes

import (
	"os"
	"strings"

	"barbertrack-backend/config"
	"barbertrack-backend/controllers"
	"barbertrack-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)

		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-shop", controllers.UpdateShopProfile)
			profile.PUT("/update-notifications", controllers.UpdateNotifications)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service record routes
		records := api.Group("/records")
		{
			records.POST("", controllers.CreateRecord)
			records.GET("", controllers.GetRecords)
			records.DELETE("/:id", controllers.DeleteRecord)
		}

		// Fixed service catalog
		api.GET("/catalog", controllers.GetCatalog)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboard)

		// Calendar routes
		api.GET("/calendar/month/:year/:month", controllers.GetMonth)
		api.GET("/calendar/day/:date", controllers.GetDay)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)
	}

	return r
}
