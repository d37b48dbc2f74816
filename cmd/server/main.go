package main

import (
	"log"

	"studyhub-backend/internal/config"
	"studyhub-backend/internal/database"
	"studyhub-backend/internal/handlers"
	"studyhub-backend/internal/middleware"
	"studyhub-backend/internal/services"
	"studyhub-backend/internal/ws"

	_ "studyhub-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           StudyHub API
// @version         1.0
// @description     Study-management API: notes, tasks, flashcards with quiz scoring, study groups and an AI assistant
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}" (or rely on the session cookie)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	scoringService := services.NewScoringService()
	flashcardService := services.NewFlashcardService(db, scoringService)
	noteService := services.NewNoteService(db)
	taskService := services.NewTaskService(db)
	groupService := services.NewStudyGroupService(db)
	aiService := services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	authHandler := handlers.NewAuthHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService, hub)
	taskHandler := handlers.NewTaskHandler(taskService, hub)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService, hub)
	groupHandler := handlers.NewStudyGroupHandler(groupService, hub)
	aiHandler := handlers.NewAIHandler(aiService, noteService, taskService, flashcardService)
	wsHandler := handlers.NewWSHandler(hub, authService, groupService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/groups/:id", wsHandler.HandleGroupSocket)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
	}

	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(authService))
	{
		notes := authorized.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/:id", noteHandler.GetNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		tasks := authorized.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		flashcards := authorized.Group("/flashcards")
		{
			flashcards.POST("/sets", flashcardHandler.CreateSet)
			flashcards.GET("/sets", flashcardHandler.ListSets)
			flashcards.DELETE("/sets/:setId", flashcardHandler.DeleteSet)
			flashcards.GET("/sets/:setId/cards", flashcardHandler.ListCards)
			flashcards.POST("/cards", flashcardHandler.CreateCard)
			flashcards.DELETE("/cards/:cardId", flashcardHandler.DeleteCard)
			flashcards.GET("/quiz/start/:setId", flashcardHandler.StartQuiz)
			flashcards.POST("/quiz/submit", flashcardHandler.SubmitQuiz)
		}

		groups := authorized.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/:groupId/members", groupHandler.ListMembers)
			groups.POST("/:groupId/members", middleware.RequireGroupAdmin(groupService), groupHandler.AddMember)
			groups.DELETE("/:groupId/members/:userId", middleware.RequireGroupAdmin(groupService), groupHandler.RemoveMember)
		}

		ai := authorized.Group("/ai")
		{
			ai.POST("/query", aiHandler.Query)
			ai.POST("/generate/task", aiHandler.GenerateTask)
			ai.POST("/generate/note", aiHandler.GenerateNote)
			ai.POST("/generate/flashcards", aiHandler.GenerateFlashcards)
			ai.POST("/generate/study-set", aiHandler.GenerateStudySet)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
