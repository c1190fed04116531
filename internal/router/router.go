package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/config"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/handler"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/middleware"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Browse *handler.BrowseHandler
	Quiz   *handler.QuizHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Browse Group (Guest or JWT) ────────────────────────────────
	// Section listings are filtered per caller, so a valid JWT widens
	// what these routes return.
	browse := router.Group("/api/v1/browse")
	browse.Use(middleware.OptionalPrincipal(cfg))
	{
		browse.GET("/departments", handlers.Browse.ListDepartments)
		browse.GET("/departments/:department_id/courses", handlers.Browse.ListCourses)
		browse.GET("/courses/:course_id/classes", handlers.Browse.ListClasses)
		browse.GET("/classes/:class_id/sections", handlers.Browse.ListSections)
		browse.GET("/sections/:section_id", handlers.Browse.GetSection)
	}

	// ─── 2. Quiz Group ─────────────────────────────────────────────────
	quiz := router.Group("/api/v1/quiz")
	quiz.Use(middleware.OptionalPrincipal(cfg))
	{
		quiz.GET("/modes", handlers.Quiz.ListModes)

		// Ephemeral sessions: nothing server-side to resolve later.
		quiz.POST("/guest", handlers.Quiz.CreateGuestSession)
		quiz.POST("/guest/score", handlers.Quiz.ScoreGuest)
	}

	// Resolvable sessions require an authenticated principal.
	sessions := router.Group("/api/v1/quiz/sessions")
	sessions.Use(middleware.RequirePrincipal(cfg))
	{
		sessions.POST("", handlers.Quiz.CreateSession)
		sessions.GET("/:token", handlers.Quiz.ResolveSession)
		sessions.POST("/:token/score", handlers.Quiz.ScoreSession)
	}

	return router
}
