package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/config"
	"github.com/lshigami/classroom-portal/database"
	_ "github.com/lshigami/classroom-portal/docs"
	hubctrl "github.com/lshigami/classroom-portal/internal/controller/hub"
	studentctrl "github.com/lshigami/classroom-portal/internal/controller/student"
	teacherctrl "github.com/lshigami/classroom-portal/internal/controller/teacher"
	"github.com/lshigami/classroom-portal/internal/logger"
	"github.com/lshigami/classroom-portal/internal/metrics"
	"github.com/lshigami/classroom-portal/internal/middleware"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/lshigami/classroom-portal/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Classroom Portal API
// @version 1.0
// @description Evaluations with automatic grading, group grade books and attendance, video hub, exercises and a code editor runner.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewEvaluationRepository,
			repository.NewSubmissionRepository,
			repository.NewUserRepository,
			repository.NewGroupRepository,
			repository.NewVideoRepository,
			repository.NewExerciseRepository,
		),

		fx.Provide(
			service.NewEvaluationService,
			service.NewGroupService,
			service.NewVideoService,
			service.NewExerciseService,
			service.NewCodeRunnerService,
			middleware.NewAuthenticator,
		),

		fx.Provide(
			teacherctrl.NewEvaluationController,
			teacherctrl.NewGroupController,
			studentctrl.NewEvaluationController,
			hubctrl.NewHubController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(middleware.RegisterValidators),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestMetrics())

	allowAll := len(cfg.Server.CORSAllowOrigins) == 0 || cfg.Server.CORSAllowOrigins[0] == "*"
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSAllowOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", metrics.Handler())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	teacherEvaluationCtrl *teacherctrl.EvaluationController,
	groupCtrl *teacherctrl.GroupController,
	studentEvaluationCtrl *studentctrl.EvaluationController,
	hubCtrl *hubctrl.HubController,
) {
	api := router.Group("/api/v1", auth.Authenticate())

	teacherAPI := api.Group("/teacher", middleware.RequireTeacher())
	{
		teacherEvaluationCtrl.RegisterRoutes(teacherAPI)
		groupCtrl.RegisterRoutes(teacherAPI)
	}

	studentAPI := api.Group("/student", middleware.RequireStudent())
	{
		studentEvaluationCtrl.RegisterRoutes(studentAPI)
	}

	hubCtrl.RegisterRoutes(api, middleware.RequireTeacher())

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Classroom portal API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Evaluation{},
		&model.StudentSubmission{},
		&model.Group{},
		&model.GroupStudent{},
		&model.Video{},
		&model.Exercise{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
