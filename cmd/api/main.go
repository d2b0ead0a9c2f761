package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/auth"
	"github.com/jhoicas/Portal-empleo-api/internal/application/notification"
	"github.com/jhoicas/Portal-empleo-api/internal/application/usecase"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Portal-empleo-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Portal-empleo-api/internal/interfaces/http"
	"github.com/jhoicas/Portal-empleo-api/pkg/config"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	jobBoardRepo := postgres.NewJobBoardRepository(pool)
	reporterRepo := postgres.NewReporterRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	// Cache opcional: con Redis caído o sin configurar, la app sigue sin cache.
	var notifCache notification.Cache
	if cache := infraredis.New(ctx, cfg.Redis, log.Component("redis")); cache != nil {
		notifCache = cache
		defer cache.Close()
	}

	notificationUC := notification.New(notificationRepo, userRepo, notifCache, log.Component("notifications"))

	approvalUC := approval.New(notificationUC, log.Component("approvals"))
	approvalUC.Register(entity.KindEmpresa, companyRepo)
	approvalUC.Register(entity.KindAgente, agentRepo)
	approvalUC.Register(entity.KindBolsa, jobBoardRepo)
	approvalUC.Register(entity.KindReporter, reporterRepo)
	approvalUC.Register(entity.KindUsuario, userRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, approvalUC)
	companyUC := usecase.NewCompanyUseCase(companyRepo, approvalUC)
	agentUC := usecase.NewAgentUseCase(agentRepo, approvalUC)
	jobBoardUC := usecase.NewJobBoardUseCase(jobBoardRepo, approvalUC)
	reporterUC := usecase.NewReporterUseCase(reporterRepo, approvalUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal Empleo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		AgentUC:        agentUC,
		JobBoardUC:     jobBoardUC,
		ReporterUC:     reporterUC,
		ApprovalUC:     approvalUC,
		NotificationUC: notificationUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	// Purga periódica de notificaciones según la retención configurada.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go retentionSweep(sweepCtx, notificationUC, cfg.Notif.RetentionDays, log.Component("retention"))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// retentionSweep purga notificaciones vencidas cada hora hasta que el contexto cierre.
func retentionSweep(ctx context.Context, uc *notification.UseCase, days int, log *logger.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.PurgeOlderThan(ctx, days); err != nil {
				log.Error().Err(err).Msg("purga periódica de notificaciones")
			}
		}
	}
}
