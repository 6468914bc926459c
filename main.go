package main

import (
	"log"
	"time"

	"learnhub-service/internal/config"
	"learnhub-service/internal/db"
	"learnhub-service/internal/event"
	"learnhub-service/internal/handlers"
	"learnhub-service/internal/repository"
	"learnhub-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	database := db.Client.Database(cfg.MongoDB.Database)

	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories, services, handlers
	userRepo := repository.NewUserRepository(database)
	testRepo := repository.NewTestRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	leaderboardRepo := repository.NewLeaderboardRepository(database)
	classSessionRepo := repository.NewClassSessionRepository(database)
	studySessionRepo := repository.NewStudySessionRepository(database)
	messageRepo := repository.NewMessageRepository(database)

	testService := service.NewTestService(testRepo, progressRepo, userRepo, leaderboardRepo)
	testHandler := handlers.NewTestHandler(testService)

	userService := service.NewUserService(userRepo, progressRepo, testRepo, studySessionRepo)
	userHandler := handlers.NewUserHandler(userService)

	sessionService := service.NewSessionService(classSessionRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	chatService := service.NewChatService(messageRepo)
	chatHandler := handlers.NewChatHandler(chatService)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to the admin")
	})

	api := r.Group("/api/v1")

	tests := api.Group("/tests")
	{
		tests.POST("/create", testHandler.CreateTest)
		tests.PATCH("/update/:testId", testHandler.UpdateTest)
		tests.DELETE("/delete/:testId", testHandler.DeleteTest)
		tests.GET("/all", testHandler.ListTests)
		tests.GET("/:testId", testHandler.GetTest)

		tests.POST("/test-completed", func(c *gin.Context) {
			testHandler.RecordAttempt(c)
			if publisher != nil {
				publisher.Publish("test.completed", gin.H{"status": c.Writer.Status(), "timestamp": time.Now()})
				publisher.Publish("leaderboard.updated", gin.H{"timestamp": time.Now()})
			}
		})
		tests.POST("/test-leader-board/:testId", testHandler.GetLeaderboard)
	}

	api.POST("/me", userHandler.GetMyProfile)
	api.PUT("/me", userHandler.UpdateProfile)
	api.GET("/users/:userId", userHandler.GetOtherUserProfile)
	api.GET("/progress/:progressId", userHandler.GetProgress)
	api.POST("/progress/:progressId", userHandler.UpdateProgress)

	study := api.Group("/studyMode")
	{
		study.POST("/startStudySession", func(c *gin.Context) {
			userHandler.StartStudySession(c)
			if publisher != nil {
				publisher.Publish("study.started", gin.H{"timestamp": time.Now()})
			}
		})
		study.POST("/stopStudySession", func(c *gin.Context) {
			userHandler.StopStudySession(c)
			if publisher != nil {
				publisher.Publish("study.stopped", gin.H{"timestamp": time.Now()})
			}
		})
	}

	sessions := api.Group("/session")
	{
		sessions.POST("/create", sessionHandler.CreateSessionAlert)
		sessions.POST("/get/today", sessionHandler.TodaysSessions)
		sessions.GET("/user/:userId", sessionHandler.SessionsByUser)
		sessions.POST("/start", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("session.started", gin.H{"timestamp": time.Now()})
			}
		})
		sessions.POST("/stop/:sessionId", func(c *gin.Context) {
			sessionHandler.StopSession(c)
			if publisher != nil {
				publisher.Publish("session.stopped", gin.H{"session_id": c.Param("sessionId"), "timestamp": time.Now()})
			}
		})
		sessions.POST("/update/:sessionId", sessionHandler.UpdateSession)
		sessions.DELETE("/delete/:sessionId", sessionHandler.DeleteSession)
		sessions.GET("/:sessionId", sessionHandler.GetSession)
	}

	api.GET("/chat/:userId/:selectedUser", chatHandler.History)
	api.POST("/chatUserList", chatHandler.Partners)

	if err := r.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
