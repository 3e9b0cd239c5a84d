package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matching-service/internal/cache"
	"matching-service/internal/config"
	"matching-service/internal/db"
	"matching-service/internal/event"
	"matching-service/internal/handlers"
	"matching-service/internal/repository"
	"matching-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.ServiceConfig

	db.InitMongo(cfg.MongoDB)
	defer db.DisconnectMongo(cfg.MongoDB)
	database := db.Client.Database(cfg.MongoDB.Database)

	// Redis cache for recommendation rails. Optional: the service degrades to
	// uncached reads when it is unreachable.
	cacheClient, err := cache.New(cfg.Redis, cfg.Matching.PopularCacheTTL)
	if err != nil {
		log.Printf("Redis unavailable, recommendation caching disabled: %v", err)
		cacheClient = nil
	} else {
		defer cacheClient.Close()
	}

	// RabbitMQ event publisher. Optional as well.
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Printf("RabbitMQ unavailable, events will not be published: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	skillRepo := repository.NewSkillRepository(database)
	mentorRepo := repository.NewMentorRepository(database)
	needRepo := repository.NewLearningNeedRepository(database)
	matchRepo := repository.NewMatchRepository(database)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	if err := mentorRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create mentor indexes: %v", err)
	}
	if err := needRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create learning need indexes: %v", err)
	}
	if err := matchRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create match indexes: %v", err)
	}
	cancelIndexes()

	matchingService := service.NewMatchingService(mentorRepo, needRepo, matchRepo, mentorRepo, publisher, cfg.Matching.PersistTimeout)
	recommendationService := service.NewRecommendationService(mentorRepo, mentorRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo, mentorRepo, publisher)
	needService := service.NewNeedService(needRepo, skillRepo, publisher)

	matchingHandler := handlers.NewMatchingHandler(matchingService, recommendationService)
	skillHandler := handlers.NewSkillHandler(skillService)
	needHandler := handlers.NewNeedHandler(needService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": cfg.Server.ServiceName})
	})

	publicSkill := r.Group("/public/matching/skill")
	{
		publicSkill.GET("/categories", skillHandler.ListCategories)
		publicSkill.GET("/", skillHandler.ListSkills)
	}

	publicMatching := r.Group("/public/matching")
	{
		publicMatching.GET("/filters", matchingHandler.FilterOptions)
		publicMatching.POST("/advanced-filter", matchingHandler.BrowseMentors)
		publicMatching.POST("/recommendations", matchingHandler.Recommend)
	}

	protectedSkill := r.Group("/protected/matching/my-skills")
	{
		protectedSkill.GET("/", skillHandler.MySkills)
		protectedSkill.POST("/", skillHandler.DeclareSkill)
		protectedSkill.PUT("/:id", skillHandler.UpdateMySkill)
	}

	protectedNeed := r.Group("/protected/matching/learning-needs")
	{
		protectedNeed.GET("/", needHandler.ListNeeds)
		protectedNeed.POST("/", needHandler.CreateNeed)
		protectedNeed.PUT("/:id", needHandler.UpdateNeed)
		protectedNeed.DELETE("/:id", needHandler.DeactivateNeed)
	}

	protectedMatching := r.Group("/protected/matching")
	{
		protectedMatching.POST("/find-mentors", matchingHandler.FindMentors)
		protectedMatching.GET("/history", matchingHandler.MatchHistory)
		protectedMatching.POST("/matches/:id/respond", matchingHandler.RespondToMatch)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.Server.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
