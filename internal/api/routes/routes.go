package routes

import (
	"maintenance-hub-backend/internal/api/handlers"
	"maintenance-hub-backend/internal/api/middleware"
	"maintenance-hub-backend/internal/auth"
	"maintenance-hub-backend/internal/config"
	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/notify"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Dependencies carries the optional infrastructure built by the caller.
// Nil fields fall back to in-process defaults.
type Dependencies struct {
	Tokens       auth.TokenStore
	Storage      service.ObjectStorage
	Mailer       service.Mailer
	HealthChecks map[string]handlers.HealthCheck
}

var (
	anyRole   = []models.Role{models.RoleVisitor, models.RoleCommon, models.RoleAdmin, models.RoleSuperAdmin}
	writers   = []models.Role{models.RoleCommon, models.RoleAdmin, models.RoleSuperAdmin}
	managers  = []models.Role{models.RoleAdmin, models.RoleSuperAdmin}
	superOnly = []models.Role{models.RoleSuperAdmin}
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	txr := repository.NewTransactor(db)

	mailer := deps.Mailer
	if mailer == nil {
		mailer = notify.DisabledMailer{}
	}

	// Initialize auth
	authService, err := auth.NewAuthService(auth.Config{
		JWTSecret:  cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL(),
		RefreshTTL: cfg.RefreshTokenTTL(),
	}, txr, repos.Profiles, repos.UserRoles, deps.Tokens, validator)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	companyService := service.NewCompanyService(repos.Companies, validator)
	userService := service.NewUserService(txr, repos.Profiles, repos.UserRoles, repos.Companies, mailer, validator, cfg.AppURL)
	machineryService := service.NewMachineryService(repos.Machinery, deps.Storage, validator)
	orderService := service.NewServiceOrderService(txr, repos.ServiceOrders, repos.Machinery, repos.Profiles, validator)
	scheduleService := service.NewScheduleService(txr, repos.Schedules, repos.Machinery, repos.ServiceOrders, repos.Profiles, validator)
	historyService := service.NewHistoryService(repos.History, repos.Machinery, repos.Schedules, repos.ServiceOrders, repos.Profiles, validator)
	partService := service.NewPartService(repos.Parts, repos.Machinery, validator)
	taskService := service.NewTaskService(repos.Tasks, repos.ServiceOrders, repos.Machinery, repos.Profiles, validator)
	eventService := service.NewCalendarEventService(repos.Events, repos.ServiceOrders, repos.Machinery, validator)
	bugService := service.NewBugReportService(repos.BugReports, deps.Storage, validator)
	tutorialService := service.NewTutorialVideoService(repos.Tutorials, validator)
	dashboardService := service.NewDashboardService(repos)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	for name, check := range deps.HealthChecks {
		healthHandler.AddCheck(name, check)
	}
	companyHandler := handlers.NewCompanyHandler(companyService)
	userHandler := handlers.NewUserHandler(userService)
	machineryHandler := handlers.NewMachineryHandler(machineryService)
	orderHandler := handlers.NewServiceOrderHandler(orderService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	partHandler := handlers.NewPartHandler(partService)
	taskHandler := handlers.NewTaskHandler(taskService)
	calendarHandler := handlers.NewCalendarHandler(eventService)
	bugHandler := handlers.NewBugReportHandler(bugService)
	tutorialHandler := handlers.NewTutorialHandler(tutorialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	authGroup := router.Group("/api/auth", middleware.RateLimit(limiter))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	v1 := router.Group("/api/v1", authMiddleware.RequireAuth())

	readers := authMiddleware.RequireRole(anyRole...)
	canWrite := authMiddleware.RequireRole(writers...)
	canManage := authMiddleware.RequireRole(managers...)
	superAdmin := authMiddleware.RequireRole(superOnly...)

	// Own profile, available to every role including visitors
	me := v1.Group("/me", readers)
	{
		me.GET("", userHandler.GetMe)
		me.PUT("", userHandler.UpdateMe)
		me.PUT("/password", userHandler.ChangePassword)
	}

	companies := v1.Group("/companies")
	{
		companies.GET("/mine", readers, companyHandler.GetOwnCompany)
		companies.GET("", superAdmin, companyHandler.ListCompanies)
		companies.POST("", superAdmin, companyHandler.CreateCompany)
		companies.GET("/:id", superAdmin, companyHandler.GetCompany)
		companies.PUT("/:id", superAdmin, companyHandler.UpdateCompany)
		companies.DELETE("/:id", superAdmin, companyHandler.DeleteCompany)
	}

	bugs := v1.Group("/bug-reports")
	{
		bugs.POST("", readers, bugHandler.CreateBugReport)
		bugs.GET("/mine", readers, bugHandler.ListOwnBugReports)
		bugs.GET("/:id", readers, bugHandler.GetBugReport)
		bugs.GET("/:id/screenshot", readers, bugHandler.GetScreenshotURL)
		bugs.GET("", superAdmin, bugHandler.ListBugReports)
		bugs.PATCH("/:id/status", superAdmin, bugHandler.UpdateBugStatus)
		bugs.DELETE("/:id", superAdmin, bugHandler.DeleteBugReport)
	}

	tutorialCache := middleware.NewResponseCache(cfg.CacheTTL())
	tutorials := v1.Group("/tutorials", tutorialCache.Cache(), tutorialCache.FlushOnWrite())
	{
		tutorials.GET("", readers, tutorialHandler.ListVideos)
		tutorials.GET("/:id", readers, tutorialHandler.GetVideo)
		tutorials.POST("", superAdmin, tutorialHandler.CreateVideo)
		tutorials.PUT("/:id", superAdmin, tutorialHandler.UpdateVideo)
		tutorials.DELETE("/:id", superAdmin, tutorialHandler.DeleteVideo)
	}

	// Everything below operates on company data
	scoped := v1.Group("", authMiddleware.RequireCompany())

	scoped.GET("/dashboard", readers, dashboardHandler.Summary)

	users := scoped.Group("/users")
	{
		users.GET("", readers, userHandler.ListUsers)
		users.GET("/lookup", canManage, userHandler.LookupEmail)
		users.POST("/invite", canManage, userHandler.InviteUser)
		users.POST("/attach", canManage, userHandler.AttachUser)
		users.GET("/:id", readers, userHandler.GetUser)
		users.PUT("/:id", canManage, userHandler.UpdateUser)
		users.PUT("/:id/role", canManage, userHandler.UpdateUserRole)
		users.POST("/:id/welcome-email", canManage, userHandler.SendWelcomeEmail)
		users.DELETE("/:id", canManage, userHandler.DeleteUser)
	}

	machinery := scoped.Group("/machinery")
	{
		machinery.GET("", readers, machineryHandler.ListMachinery)
		machinery.POST("", canManage, machineryHandler.CreateMachinery)
		machinery.GET("/:id", readers, machineryHandler.GetMachinery)
		machinery.PUT("/:id", canManage, machineryHandler.UpdateMachinery)
		machinery.DELETE("/:id", canManage, machineryHandler.DeleteMachinery)
		machinery.POST("/:id/photo", canManage, machineryHandler.UploadPhoto)
		machinery.GET("/:id/photo", readers, machineryHandler.GetPhotoURL)
	}

	orders := scoped.Group("/service-orders")
	{
		orders.GET("", readers, orderHandler.ListServiceOrders)
		orders.POST("", canWrite, orderHandler.CreateServiceOrder)
		orders.GET("/:id", readers, orderHandler.GetServiceOrder)
		orders.PUT("/:id", canWrite, orderHandler.UpdateServiceOrder)
		orders.PATCH("/:id/status", canWrite, orderHandler.MoveServiceOrder)
		orders.DELETE("/:id", canManage, orderHandler.DeleteServiceOrder)
	}

	schedules := scoped.Group("/schedules")
	{
		schedules.GET("", readers, scheduleHandler.ListSchedules)
		schedules.GET("/due", readers, scheduleHandler.ListDue)
		schedules.GET("/overdue", readers, scheduleHandler.ListOverdue)
		schedules.POST("", canManage, scheduleHandler.CreateSchedule)
		schedules.GET("/:id", readers, scheduleHandler.GetSchedule)
		schedules.PUT("/:id", canManage, scheduleHandler.UpdateSchedule)
		schedules.DELETE("/:id", canManage, scheduleHandler.DeleteSchedule)
		schedules.POST("/:id/complete", canWrite, scheduleHandler.CompleteSchedule)
	}

	history := scoped.Group("/history")
	{
		history.GET("", readers, historyHandler.ListRecords)
		history.GET("/monthly", readers, historyHandler.Monthly)
		history.GET("/costs", readers, historyHandler.CostSummary)
		history.GET("/export", readers, historyHandler.Export)
		history.POST("", canWrite, historyHandler.CreateRecord)
		history.GET("/:id", readers, historyHandler.GetRecord)
		history.PUT("/:id", canWrite, historyHandler.UpdateRecord)
		history.DELETE("/:id", canManage, historyHandler.DeleteRecord)
	}

	parts := scoped.Group("/parts")
	{
		parts.GET("", readers, partHandler.ListParts)
		parts.GET("/low-stock", readers, partHandler.LowStock)
		parts.GET("/price-ticker", readers, partHandler.PriceTicker)
		parts.GET("/export", readers, partHandler.Export)
		parts.POST("", canManage, partHandler.CreatePart)
		parts.GET("/:id", readers, partHandler.GetPart)
		parts.PUT("/:id", canManage, partHandler.UpdatePart)
		parts.POST("/:id/stock", canWrite, partHandler.AdjustStock)
		parts.DELETE("/:id", canManage, partHandler.DeletePart)
	}

	tasks := scoped.Group("/tasks")
	{
		tasks.GET("", readers, taskHandler.ListTasks)
		tasks.GET("/board", readers, taskHandler.Board)
		tasks.POST("", canWrite, taskHandler.CreateTask)
		tasks.GET("/:id", readers, taskHandler.GetTask)
		tasks.PUT("/:id", canWrite, taskHandler.UpdateTask)
		tasks.PATCH("/:id/status", canWrite, taskHandler.MoveTask)
		tasks.DELETE("/:id", canManage, taskHandler.DeleteTask)
	}

	events := scoped.Group("/calendar/events")
	{
		events.GET("", readers, calendarHandler.ListEvents)
		events.POST("", canWrite, calendarHandler.CreateEvent)
		events.GET("/:id", readers, calendarHandler.GetEvent)
		events.PUT("/:id", canWrite, calendarHandler.UpdateEvent)
		events.DELETE("/:id", canManage, calendarHandler.DeleteEvent)
	}

	return router, nil
}
