package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/auth"
	"github.com/jhoicas/Portal-empleo-api/internal/application/notification"
	"github.com/jhoicas/Portal-empleo-api/internal/application/usecase"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	AgentUC        *usecase.AgentUseCase
	JobBoardUC     *usecase.JobBoardUseCase
	ReporterUC     *usecase.ReporterUseCase
	ApprovalUC     *approval.UseCase
	NotificationUC *notification.UseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: token válido + actor cargado desde la base.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ActorMiddleware(deps.UserRepo))

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Put("/:id/password", authHandler.ChangePassword)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Agents (protegido)
	agents := protected.Group("/agents")
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)

	// Job boards (protegido)
	boards := protected.Group("/job-boards")
	boardHandler := NewJobBoardHandler(deps.JobBoardUC)
	boards.Post("/", boardHandler.Create)
	boards.Get("/", boardHandler.List)
	boards.Get("/:id", boardHandler.GetByID)
	boards.Put("/:id", boardHandler.Update)

	// Reporters (protegido)
	reporters := protected.Group("/reporters")
	reporterHandler := NewReporterHandler(deps.ReporterUC)
	reporters.Post("/", reporterHandler.Create)
	reporters.Get("/", reporterHandler.List)
	reporters.Get("/:id", reporterHandler.GetByID)
	reporters.Put("/:id", reporterHandler.Update)

	// Approvals (protegido; el guard de aprobadores vive en el caso de uso)
	approvals := protected.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals.Get("/pending", approvalHandler.ListPending)
	approvals.Post("/:kind/:id/approve", approvalHandler.Approve)
	approvals.Post("/:kind/:id/reject", approvalHandler.Reject)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/unread", notificationHandler.ListUnread)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Get("/stats", notificationHandler.Stats)
	notifications.Delete("/purge", notificationHandler.Purge)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
}
