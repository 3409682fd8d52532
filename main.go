package main

import (
	"log"
	"os"
	"time"

	"shaurya/database"
	"shaurya/handlers"
	"shaurya/middleware"
	"shaurya/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()
	database.SeedRoles()
	if getEnv("SEED_DEMO_DATA", "false") == "true" {
		database.SeedDemoData()
	}

	// Live schedule feed for the admin console
	services.InitScheduleFeed()

	// Background tournament archiver
	services.InitArchiveService()
	services.GetArchiveService().Start()
	defer services.GetArchiveService().Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := getEnv("CORS_ORIGINS", "http://localhost:4200")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.FiberRateLimitMiddleware())

	api := app.Group("/api")

	// Account routes with stricter rate limiting
	account := api.Group("/Account")
	account.Use(middleware.FiberAuthRateLimitMiddleware())
	account.Post("/register", handlers.Register)
	account.Post("/login", handlers.Login)

	// Organizations
	orgs := api.Group("/Organizations")
	orgs.Get("/", handlers.GetOrganizations)
	orgs.Get("/:id", handlers.GetOrganization)
	orgs.Post("/", handlers.CreateOrganization)
	orgs.Put("/:id", handlers.UpdateOrganization)
	orgs.Delete("/:id", handlers.DeleteOrganization)

	// Ability types
	abilities := api.Group("/AbilityTypes")
	abilities.Get("/", handlers.GetAbilityTypes)
	abilities.Get("/:id", handlers.GetAbilityType)
	abilities.Post("/", handlers.CreateAbilityType)
	abilities.Put("/:id", handlers.UpdateAbilityType)
	abilities.Delete("/:id", handlers.DeleteAbilityType)

	// Participants
	participants := api.Group("/Participants")
	participants.Get("/", handlers.GetParticipants)
	participants.Get("/:id", handlers.GetParticipant)
	participants.Post("/", handlers.CreateParticipant)
	participants.Put("/:id", handlers.UpdateParticipant)
	participants.Delete("/:id", handlers.DeleteParticipant)

	// Volunteers
	volunteers := api.Group("/Volunteers")
	volunteers.Get("/", handlers.GetVolunteers)
	volunteers.Get("/:id", handlers.GetVolunteer)
	volunteers.Post("/", handlers.CreateVolunteer)
	volunteers.Put("/:id", handlers.UpdateVolunteer)
	volunteers.Delete("/:id", handlers.DeleteVolunteer)

	// Grounds
	grounds := api.Group("/Grounds")
	grounds.Get("/", handlers.GetGrounds)
	grounds.Get("/:id", handlers.GetGround)
	grounds.Post("/", handlers.CreateGround)
	grounds.Put("/:id", handlers.UpdateGround)
	grounds.Delete("/:id", handlers.DeleteGround)

	// Activities
	activities := api.Group("/Activities")
	activities.Get("/", handlers.GetActivities)
	activities.Get("/:id", handlers.GetActivity)
	activities.Post("/", handlers.CreateActivity)
	activities.Put("/:id", handlers.UpdateActivity)
	activities.Delete("/:id", handlers.DeleteActivity)

	// Activity categories
	categories := api.Group("/ActivityCategories")
	categories.Get("/", handlers.GetActivityCategories)
	categories.Get("/:id", handlers.GetActivityCategory)
	categories.Post("/", handlers.CreateActivityCategory)
	categories.Put("/:id", handlers.UpdateActivityCategory)
	categories.Delete("/:id", handlers.DeleteActivityCategory)

	// Ground allocations
	allocations := api.Group("/GroundAllocations")
	allocations.Get("/", handlers.GetGroundAllocations)
	allocations.Get("/:id", handlers.GetGroundAllocation)
	allocations.Post("/", handlers.CreateGroundAllocation)
	allocations.Put("/:id", handlers.UpdateGroundAllocation)
	allocations.Delete("/:id", handlers.DeleteGroundAllocation)

	// Team assignments
	teams := api.Group("/TeamAssignments")
	teams.Get("/", handlers.GetTeamAssignments)
	teams.Get("/:id", handlers.GetTeamAssignment)
	teams.Get("/:id/Members", handlers.GetTeamMembers)
	teams.Post("/", handlers.CreateTeamAssignment)
	teams.Put("/:id", handlers.UpdateTeamAssignment)
	teams.Put("/:id/AssignGround", handlers.AssignGround)
	teams.Delete("/:id", handlers.DeleteTeamAssignment)

	// Tournaments
	tournaments := api.Group("/Tournaments")
	tournaments.Get("/", handlers.GetTournaments)
	tournaments.Get("/:id", handlers.GetTournament)
	tournaments.Get("/:id/activities", handlers.GetTournamentActivities)
	tournaments.Post("/", handlers.CreateTournament)
	tournaments.Post("/:tournamentId/activities/:activityId", handlers.AddActivityToTournament)
	tournaments.Put("/:id", handlers.UpdateTournament)
	tournaments.Delete("/:id", handlers.DeleteTournament)
	tournaments.Delete("/:tournamentId/activities/:activityId", handlers.RemoveActivityFromTournament)

	// Games; fixed lookup routes go before the :id routes
	games := api.Group("/Games")
	games.Get("/", handlers.GetGames)
	games.Get("/ByCode/:code", handlers.GetGameByCode)
	games.Get("/ByDisabilityType/:code", handlers.GetGamesByDisabilityType)
	games.Get("/ByAgeCategory/:cat", handlers.GetGamesByAgeCategory)
	games.Get("/ByAgeAndAbility", handlers.GetGamesByAgeAndAbility)
	games.Get("/GroupedByDisability", handlers.GetGamesGroupedByDisability)
	games.Get("/Participation", handlers.GetGameParticipation)
	games.Get("/:id", handlers.GetGame)
	games.Post("/", handlers.CreateGame)
	games.Put("/:id", handlers.UpdateGame)
	games.Delete("/:id", handlers.DeleteGame)

	// Registrations
	registrations := api.Group("/ParticipantGames")
	registrations.Get("/", handlers.GetParticipantGames)
	registrations.Get("/:id", handlers.GetParticipantGame)
	registrations.Post("/", handlers.CreateParticipantGame)
	registrations.Delete("/:id", handlers.DeleteParticipantGame)

	// User administration requires the Volunteer role
	users := api.Group("/Users")
	users.Use(middleware.AuthMiddleware)
	users.Use(middleware.RequireRole("Volunteer"))
	users.Get("/", handlers.GetUsers)
	users.Get("/:id", handlers.GetUser)
	users.Put("/:id", handlers.UpdateUser)
	users.Delete("/:id", handlers.DeleteUser)

	// Live schedule feed
	app.Use("/ws/schedule", handlers.ScheduleFeedUpgrade)
	app.Get("/ws/schedule", handlers.ScheduleFeedHandler)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := getEnv("PORT", "3000")

	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:4200" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
