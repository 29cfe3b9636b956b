package main

import (
	"fmt"
	"os"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/routes"
	"motoassist-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ServiceJob{},
		&models.Mechanic{},
		&models.VehicleCatalogEntry{},
		&models.ReminderLog{},
	)

	if err := config.SeedVehicleCatalog(); err != nil {
		log.Errorf("failed to seed vehicle catalog: %v", err)
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// The daily reminder digest is opt-in; the due-service query stays
	// available on demand either way.
	if schedule := os.Getenv("REMINDER_SCHEDULE"); schedule != "" {
		reminders := services.NewReminderService(config.DB)
		if err := reminders.StartScheduler(schedule); err != nil {
			log.Errorf("failed to start reminder scheduler: %v", err)
		}
	}

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
