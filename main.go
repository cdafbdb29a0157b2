package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-tracker/config"
	"portfolio-tracker/handlers"
	"portfolio-tracker/ipo"
	"portfolio-tracker/middleware"
	"portfolio-tracker/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	// Initialize PostgreSQL and Redis connections.
	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	// Auto-migrate models.
	if err := config.DB.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Investment{}); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	handlers.Ipo = ipo.NewClient(config.Rdb)

	router := gin.Default()

	// Public routes
	router.POST("/auth/register", handlers.Register)
	router.POST("/auth/login", handlers.Login)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middleware.TokenAuth())
	{
		auth.GET("/auth/me", handlers.Me)

		auth.GET("/portfolios", handlers.ListPortfolios)
		auth.POST("/portfolios", handlers.CreatePortfolio)
		auth.GET("/portfolios/summary", handlers.PortfolioSummaries)
		auth.GET("/portfolios/:id", handlers.GetPortfolio)
		auth.PUT("/portfolios/:id", handlers.UpdatePortfolio)
		auth.DELETE("/portfolios/:id", handlers.DeletePortfolio)

		auth.GET("/portfolios/:id/investments", handlers.ListInvestments)
		auth.POST("/portfolios/:id/investments", handlers.CreateInvestment)
		auth.GET("/portfolios/:id/investments/:investmentId", handlers.GetInvestment)
		auth.PUT("/portfolios/:id/investments/:investmentId", handlers.UpdateInvestment)
		auth.DELETE("/portfolios/:id/investments/:investmentId", handlers.DeleteInvestment)

		auth.GET("/users/profile", handlers.GetProfile)
		auth.PUT("/users/profile", handlers.UpdateProfile)
		auth.PUT("/users/change-password", handlers.ChangePassword)

		auth.GET("/ipo/calendar", handlers.GetIpoCalendar)
		auth.GET("/ipo/calendar/current-month", handlers.GetCurrentMonthIpoCalendar)
		auth.GET("/ipo/calendar/next-30-days", handlers.GetNext30DaysIpoCalendar)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
