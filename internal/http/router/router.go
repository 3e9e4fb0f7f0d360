package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// Handlers набор хэндлеров, которые подключает роутер.
type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Patents      *handlers.PatentHandler
	Competitions *handlers.CompetitionHandler
	News         *handlers.NewsHandler
	Projects     *handlers.ProjectHandler
	Skills       *handlers.SkillHandler
	AboutValues  *handlers.AboutValueHandler
	Files        *handlers.FileHandler
	Analytics    *handlers.AnalyticsHandler
}

// SetupRouter собирает gin.Engine со всеми маршрутами API.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.RegisterBindings()

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).WithField("panic", recovered).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "внутренняя ошибка сервера",
			"code":  "INTERNAL_ERROR",
		})
	}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", h.Auth.Login)
	}

	api := r.Group("/api/v1")
	api.GET("/health", h.Health.Health)

	api.GET("/user", h.Users.GetOwner)
	api.POST("/user/update", h.Users.UpdateOwner)

	users := api.Group("/users")
	{
		users.GET("", h.Users.ListUsers)
		users.POST("", h.Users.CreateUser)
		users.GET("/:id", h.Users.GetUser)
		users.PUT("/:id", h.Users.UpdateUser)
	}

	patents := api.Group("/patents")
	{
		patents.GET("", h.Patents.ListPatents)
		patents.POST("", h.Patents.CreatePatent)
		patents.GET("/:id", h.Patents.GetPatent)
		patents.PUT("/:id", h.Patents.UpdatePatent)
		patents.DELETE("/:id", h.Patents.DeletePatent)
	}

	competitions := api.Group("/competitions")
	{
		competitions.GET("", h.Competitions.ListCompetitions)
		competitions.POST("", h.Competitions.CreateCompetition)
		competitions.GET("/:id", h.Competitions.GetCompetition)
		competitions.PUT("/:id", h.Competitions.UpdateCompetition)
		competitions.DELETE("/:id", h.Competitions.DeleteCompetition)
	}

	// /media-coverage исторический адрес той же коллекции.
	for _, prefix := range []string{"/news", "/media-coverage"} {
		news := api.Group(prefix)
		news.GET("", h.News.ListArticles)
		news.POST("", h.News.CreateArticle)
		news.GET("/:id", h.News.GetArticle)
		news.PUT("/:id", h.News.UpdateArticle)
		news.DELETE("/:id", h.News.DeleteArticle)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", h.Projects.ListProjects)
		projects.POST("", h.Projects.CreateProject)
		projects.GET("/:id", h.Projects.GetProject)
		projects.PUT("/:id", h.Projects.UpdateProject)
		projects.DELETE("/:id", h.Projects.DeleteProject)
	}

	skills := api.Group("/skills")
	{
		skills.GET("", h.Skills.ListSkills)
		skills.POST("", h.Skills.CreateSkill)
		skills.GET("/:id", h.Skills.GetSkill)
		skills.PUT("/:id", h.Skills.UpdateSkill)
		skills.DELETE("/:id", h.Skills.DeleteSkill)
	}

	about := api.Group("/about-values")
	{
		about.GET("", h.AboutValues.ListValues)
		about.POST("", h.AboutValues.CreateValue)
		about.POST("/reorder", h.AboutValues.Reorder)
		about.GET("/:id", h.AboutValues.GetValue)
		about.PUT("/:id", h.AboutValues.UpdateValue)
		about.DELETE("/:id", h.AboutValues.DeleteValue)
	}

	files := api.Group("/files")
	{
		files.GET("", h.Files.ListFiles)
		files.POST("", h.Files.Upload)
		files.GET("/:id", h.Files.GetFile)
		files.GET("/:id/content", h.Files.Content)
		files.DELETE("/:id", h.Files.DeleteFile)
	}

	analytics := api.Group("/analytics")
	{
		analytics.POST("/track", middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod), h.Analytics.Track)
		analytics.GET("/stats", h.Analytics.Stats)
		analytics.GET("/recent", h.Analytics.Recent)
	}

	return r
}
