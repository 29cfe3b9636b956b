package routes

import (
	"os"
	"strings"

	"motoassist-backend/config"
	"motoassist-backend/controllers"
	"motoassist-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", controllers.CreateJob)
			jobs.GET("", controllers.GetJobs)
			jobs.GET("/:id", controllers.GetJob)
			jobs.PUT("/:id/status", controllers.UpdateJobStatus)
			jobs.PUT("/:id/payment", controllers.UpdateJobPayment)
			jobs.DELETE("/:id", controllers.DeleteJob)

			jobs.GET("/:id/whatsapp", controllers.GetJobWhatsAppLink)
			jobs.GET("/:id/bill", controllers.GetBill)
			jobs.GET("/:id/bill/pdf", controllers.GetBillPDF)
			jobs.GET("/:id/bill/share", controllers.GetBillShareLink)
		}

		// Mechanic roster routes
		mechanics := api.Group("/mechanics")
		{
			mechanics.GET("", controllers.GetMechanics)
			mechanics.POST("", controllers.AddMechanic)
			mechanics.DELETE("/:id", controllers.DeleteMechanic)
		}

		// Vehicle catalog routes (reads for everyone, writes admin-only)
		catalog := api.Group("/catalog")
		{
			catalog.GET("", controllers.GetVehicleCatalog)
			catalog.POST("", utils.AdminMiddleware(), controllers.AddCatalogEntry)
			catalog.DELETE("/:id", utils.AdminMiddleware(), controllers.DeleteCatalogEntry)
		}

		// Maintenance suggestion route
		api.POST("/suggestions", controllers.GetSuggestions)

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.GET("/due", controllers.GetDueReminders)
			reminders.GET("/logs", controllers.GetReminderLogs)
		}

		// Dashboard route
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
