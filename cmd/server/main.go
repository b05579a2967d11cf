package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	auditapp "github.com/RaminduDJay/supply-chain-management/internal/application/audit"
	catalogapp "github.com/RaminduDJay/supply-chain-management/internal/application/catalog"
	customerapp "github.com/RaminduDJay/supply-chain-management/internal/application/customer"
	identityapp "github.com/RaminduDJay/supply-chain-management/internal/application/identity"
	inventoryapp "github.com/RaminduDJay/supply-chain-management/internal/application/inventory"
	orderingapp "github.com/RaminduDJay/supply-chain-management/internal/application/ordering"
	reportapp "github.com/RaminduDJay/supply-chain-management/internal/application/report"
	transportapp "github.com/RaminduDJay/supply-chain-management/internal/application/transport"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/auth"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/config"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/event"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/logger"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/scheduler"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/telemetry"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/handler"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting supply chain backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Telemetry (no-op provider when disabled)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with zap-backed GORM logging
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	db.DB.Logger = logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	if cfg.Telemetry.Enabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable GORM tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	orderNumberGen := persistence.NewSequenceOrderNumberGenerator(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	storeInventoryRepo := persistence.NewGormStoreInventoryRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	trainRepo := persistence.NewGormTrainRepository(db.DB)
	trainScheduleRepo := persistence.NewGormTrainScheduleRepository(db.DB)
	truckRepo := persistence.NewGormTruckRepository(db.DB)
	truckScheduleRepo := persistence.NewGormTruckScheduleRepository(db.DB)
	routeRepo := persistence.NewGormRouteRepository(db.DB)
	staffRepo := persistence.NewGormStaffRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)
	inventoryReportRepo := persistence.NewGormInventoryReportRepository(db.DB)
	transportReportRepo := persistence.NewGormTransportReportRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)

	// Token blacklist backed by Redis, falling back to in-memory when
	// Redis is unreachable (single-node deployments).
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Event bus and cross-context handlers
	eventBus := event.NewInMemoryEventBus(log)
	orderEventHandler := inventoryapp.NewOrderEventHandler(storeInventoryRepo, stockMovementRepo, log)
	eventBus.Subscribe(orderEventHandler, orderEventHandler.EventTypes()...)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()
	log.Info("Event handlers registered",
		zap.Strings("order_events", orderEventHandler.EventTypes()),
	)

	// Application services
	authService := identityapp.NewAuthService(userRepo, customerRepo, jwtService, blacklist, eventBus, cfg.Auth, log)
	userService := identityapp.NewUserService(userRepo, storeRepo, eventBus, log)
	itemService := catalogapp.NewItemService(itemRepo, eventBus, log)
	customerService := customerapp.NewCustomerService(customerRepo, eventBus, log)
	cartService := orderingapp.NewCartService(cartRepo, itemRepo, customerRepo, log)
	checkoutService := orderingapp.NewCheckoutService(
		cartRepo, orderRepo, customerRepo, routeRepo, storeRepo, storeInventoryRepo,
		orderNumberGen, eventBus, log,
	)
	orderService := orderingapp.NewOrderService(orderRepo, trainScheduleRepo, truckScheduleRepo, orderEventHandler, eventBus, log)
	inventoryService := inventoryapp.NewInventoryService(storeInventoryRepo, stockMovementRepo, storeRepo, eventBus, log)
	storeService := inventoryapp.NewStoreService(storeRepo, userRepo, log)
	fleetService := transportapp.NewFleetService(trainRepo, truckRepo, routeRepo, storeRepo, log)
	scheduleService := transportapp.NewScheduleService(
		trainRepo, truckRepo, routeRepo, staffRepo, trainScheduleRepo, truckScheduleRepo, log,
	)
	staffService := transportapp.NewStaffService(staffRepo, storeRepo, log)
	reportService := reportapp.NewReportService(salesReportRepo, inventoryReportRepo, transportReportRepo, log)
	auditService := auditapp.NewService(auditRepo, log)

	// Weekly working-hours reset for drivers and assistants
	if cfg.Scheduler.Enabled {
		resetTrigger := scheduler.NewWeeklyResetTrigger(cfg.Scheduler, staffService, log)
		resetTrigger.Start(context.Background())
		defer resetTrigger.Stop()
	}

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)
	cartHandler := handler.NewCartHandler(cartService, checkoutService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	storeHandler := handler.NewStoreHandler(storeService)
	fleetHandler := handler.NewFleetHandler(fleetService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	staffHandler := handler.NewStaffHandler(staffService)
	reportHandler := handler.NewReportHandler(reportService)
	auditHandler := handler.NewAuditHandler(auditService)
	systemHandler := handler.NewSystemHandler(db.DB, cfg.App.Name, cfg.App.Env)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Middleware stack: request ID first so every later log line carries it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	if cfg.HTTP.RateLimitRPS > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("rps", cfg.HTTP.RateLimitRPS),
			zap.Int("burst", cfg.HTTP.RateLimitBurst),
		)
	}

	// Liveness endpoint outside API versioning and authentication
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/register",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	// Authentication (login, register and refresh are public via skip paths).
	// Credential endpoints run behind a much tighter rate limit than the
	// rest of the API to slow down guessing.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitRPS > 0 {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRPS, cfg.HTTP.AuthRateLimitBurst)
		authRoutes.Use(middleware.RateLimit(authLimiter))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.GetCurrentUser)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Catalog: anyone logged in can browse, only the main manager curates
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/items", itemHandler.List)
	catalogRoutes.GET("/items/:id", itemHandler.GetByID)
	catalogRoutes.GET("/items/code/:code", itemHandler.GetByCode)
	catalogRoutes.POST("/items", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.Create)
	catalogRoutes.PUT("/items/:id", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.Update)
	catalogRoutes.PUT("/items/:id/price", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.SetPrice)
	catalogRoutes.PUT("/items/:id/dimensions", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.SetDimensions)
	catalogRoutes.PUT("/items/:id/handling", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.SetHandling)
	catalogRoutes.POST("/items/:id/activate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.Activate)
	catalogRoutes.POST("/items/:id/deactivate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.Deactivate)
	catalogRoutes.POST("/items/:id/discontinue", middleware.RequireMainManager(), middleware.AuditLog(auditService, "item"), itemHandler.Discontinue)

	// Cart and checkout (customers only)
	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.Use(middleware.RequireCustomer())
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:item_id", cartHandler.UpdateItem)
	cartRoutes.DELETE("/items/:item_id", cartHandler.RemoveItem)
	cartRoutes.DELETE("", cartHandler.Clear)
	cartRoutes.POST("/checkout", cartHandler.Checkout)

	// Customer accounts: self-service profile plus staff administration
	customerRoutes := router.NewDomainGroup("customer", "/customers")
	customerRoutes.GET("/me", middleware.RequireCustomer(), customerHandler.GetProfile)
	customerRoutes.PUT("/me", middleware.RequireCustomer(), customerHandler.UpdateProfile)
	customerRoutes.GET("", middleware.RequireStaff(), customerHandler.List)
	customerRoutes.GET("/:id", middleware.RequireStaff(), customerHandler.GetByID)
	customerRoutes.PUT("/:id/type", middleware.RequireMainManager(), middleware.AuditLog(auditService, "customer"), customerHandler.ChangeType)
	customerRoutes.PUT("/:id/credit-limit", middleware.RequireMainManager(), middleware.AuditLog(auditService, "customer"), customerHandler.SetCreditLimit)
	customerRoutes.POST("/:id/suspend", middleware.RequireMainManager(), middleware.AuditLog(auditService, "customer"), customerHandler.Suspend)
	customerRoutes.POST("/:id/activate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "customer"), customerHandler.Activate)
	customerRoutes.POST("/:id/deactivate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "customer"), customerHandler.Deactivate)

	// Orders: customers see their own, staff drive the delivery pipeline
	orderRoutes := router.NewDomainGroup("ordering", "/orders")
	orderRoutes.GET("/mine", middleware.RequireCustomer(), orderHandler.ListMine)
	orderRoutes.GET("", middleware.RequireStaff(), orderHandler.List)
	orderRoutes.GET("/stats/count", middleware.RequireStaff(), orderHandler.CountByStatus)
	orderRoutes.GET("/number/:order_number", middleware.RequireStaff(), orderHandler.GetByNumber)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.POST("/:id/confirm", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.Confirm)
	orderRoutes.POST("/:id/assign-train", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.AssignTrain)
	orderRoutes.POST("/:id/assign-truck", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.AssignTruck)
	orderRoutes.PUT("/:id/status", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.UpdateStatus)
	orderRoutes.PUT("/bulk/status", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.BulkUpdateStatus)
	orderRoutes.POST("/:id/cancel", middleware.AuditLog(auditService, "order"), orderHandler.Cancel)
	orderRoutes.POST("/:id/return", middleware.RequireStaff(), middleware.AuditLog(auditService, "order"), orderHandler.Return)

	// Store inventory
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.Use(middleware.RequireStaff())
	inventoryRoutes.POST("/stores/:store_id/receive", middleware.AuditLog(auditService, "inventory"), inventoryHandler.Receive)
	inventoryRoutes.POST("/stores/:store_id/adjust", middleware.AuditLog(auditService, "inventory"), inventoryHandler.Adjust)
	inventoryRoutes.PUT("/stores/:store_id/reorder-level", middleware.AuditLog(auditService, "inventory"), inventoryHandler.SetReorderLevel)
	inventoryRoutes.GET("/stores/:store_id/stock", inventoryHandler.ListByStore)
	inventoryRoutes.GET("/stores/:store_id/stock/:item_id", inventoryHandler.GetStock)
	inventoryRoutes.GET("/stores/:store_id/movements", inventoryHandler.ListMovements)
	inventoryRoutes.GET("/low-stock", inventoryHandler.ListLowStock)

	// Stores
	storeRoutes := router.NewDomainGroup("store", "/stores")
	storeRoutes.GET("", middleware.RequireStaff(), storeHandler.List)
	storeRoutes.GET("/:id", middleware.RequireStaff(), storeHandler.GetByID)
	storeRoutes.POST("", middleware.RequireMainManager(), middleware.AuditLog(auditService, "store"), storeHandler.Create)
	storeRoutes.PUT("/:id", middleware.RequireMainManager(), middleware.AuditLog(auditService, "store"), storeHandler.Update)
	storeRoutes.PUT("/:id/manager", middleware.RequireMainManager(), middleware.AuditLog(auditService, "store"), storeHandler.AssignManager)
	storeRoutes.POST("/:id/activate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "store"), storeHandler.Activate)
	storeRoutes.POST("/:id/deactivate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "store"), storeHandler.Deactivate)

	// Fleet: trains, trucks and delivery routes
	fleetRoutes := router.NewDomainGroup("fleet", "/fleet")
	fleetRoutes.Use(middleware.RequireStaff())
	fleetRoutes.POST("/trains", middleware.RequireMainManager(), middleware.AuditLog(auditService, "train"), fleetHandler.RegisterTrain)
	fleetRoutes.GET("/trains", fleetHandler.ListTrains)
	fleetRoutes.GET("/trains/:id", fleetHandler.GetTrain)
	fleetRoutes.POST("/trains/:id/maintenance", middleware.RequireMainManager(), middleware.AuditLog(auditService, "train"), fleetHandler.SendTrainToMaintenance)
	fleetRoutes.POST("/trains/:id/in-service", middleware.RequireMainManager(), middleware.AuditLog(auditService, "train"), fleetHandler.ReturnTrainToService)
	fleetRoutes.POST("/trains/:id/retire", middleware.RequireMainManager(), middleware.AuditLog(auditService, "train"), fleetHandler.RetireTrain)
	fleetRoutes.POST("/trucks", middleware.AuditLog(auditService, "truck"), fleetHandler.RegisterTruck)
	fleetRoutes.GET("/trucks", fleetHandler.ListTrucks)
	fleetRoutes.GET("/trucks/:id", fleetHandler.GetTruck)
	fleetRoutes.POST("/trucks/:id/maintenance", middleware.AuditLog(auditService, "truck"), fleetHandler.SendTruckToMaintenance)
	fleetRoutes.POST("/trucks/:id/in-service", middleware.AuditLog(auditService, "truck"), fleetHandler.ReturnTruckToService)
	fleetRoutes.POST("/trucks/:id/retire", middleware.AuditLog(auditService, "truck"), fleetHandler.RetireTruck)
	fleetRoutes.POST("/routes", middleware.RequireMainManager(), middleware.AuditLog(auditService, "route"), fleetHandler.CreateRoute)
	fleetRoutes.GET("/routes", fleetHandler.ListRoutes)
	fleetRoutes.GET("/routes/:id", fleetHandler.GetRoute)
	fleetRoutes.PUT("/routes/:id", middleware.RequireMainManager(), middleware.AuditLog(auditService, "route"), fleetHandler.UpdateRoute)
	fleetRoutes.POST("/routes/:id/activate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "route"), fleetHandler.ActivateRoute)
	fleetRoutes.POST("/routes/:id/deactivate", middleware.RequireMainManager(), middleware.AuditLog(auditService, "route"), fleetHandler.DeactivateRoute)

	// Transport scheduling: train runs belong to the main manager, truck
	// runs are crewed by the store managers
	scheduleRoutes := router.NewDomainGroup("schedule", "/schedules")
	scheduleRoutes.Use(middleware.RequireStaff())
	scheduleRoutes.POST("/trains", middleware.RequireMainManager(), middleware.AuditLog(auditService, "train_schedule"), scheduleHandler.ScheduleTrain)
	scheduleRoutes.GET("/trains/open", scheduleHandler.ListOpenTrainSchedules)
	scheduleRoutes.GET("/trains/:id", scheduleHandler.GetTrainSchedule)
	scheduleRoutes.POST("/trains/:id/depart", middleware.AuditLog(auditService, "train_schedule"), scheduleHandler.DepartTrain)
	scheduleRoutes.POST("/trains/:id/complete", middleware.AuditLog(auditService, "train_schedule"), scheduleHandler.CompleteTrain)
	scheduleRoutes.POST("/trains/:id/cancel", middleware.AuditLog(auditService, "train_schedule"), scheduleHandler.CancelTrain)
	scheduleRoutes.POST("/trucks", middleware.AuditLog(auditService, "truck_schedule"), scheduleHandler.ScheduleTruck)
	scheduleRoutes.GET("/trucks/open", scheduleHandler.ListOpenTruckSchedules)
	scheduleRoutes.GET("/trucks/by-store", scheduleHandler.ListTruckSchedulesByStore)
	scheduleRoutes.GET("/trucks/:id", scheduleHandler.GetTruckSchedule)
	scheduleRoutes.POST("/trucks/:id/depart", middleware.AuditLog(auditService, "truck_schedule"), scheduleHandler.DepartTruck)
	scheduleRoutes.POST("/trucks/:id/complete", middleware.AuditLog(auditService, "truck_schedule"), scheduleHandler.CompleteTruck)
	scheduleRoutes.POST("/trucks/:id/cancel", middleware.AuditLog(auditService, "truck_schedule"), scheduleHandler.CancelTruck)

	// Drivers and assistants
	staffRoutes := router.NewDomainGroup("staff", "/staff")
	staffRoutes.Use(middleware.RequireStaff())
	staffRoutes.POST("", middleware.AuditLog(auditService, "staff"), staffHandler.Hire)
	staffRoutes.GET("", staffHandler.ListByStore)
	staffRoutes.GET("/available", staffHandler.ListAvailable)
	staffRoutes.GET("/:id", staffHandler.GetByID)
	staffRoutes.POST("/:id/on-leave", middleware.AuditLog(auditService, "staff"), staffHandler.SetOnLeave)
	staffRoutes.POST("/:id/return", middleware.AuditLog(auditService, "staff"), staffHandler.ReturnFromLeave)
	staffRoutes.POST("/:id/deactivate", middleware.AuditLog(auditService, "staff"), staffHandler.Deactivate)
	staffRoutes.POST("/reset-weekly-hours", middleware.RequireMainManager(), middleware.AuditLog(auditService, "staff"), staffHandler.ResetWeeklyHours)

	// Reports (store managers see their own store, main manager sees all)
	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.Use(middleware.RequireStaff())
	reportRoutes.GET("/sales/summary", reportHandler.SalesSummary)
	reportRoutes.GET("/sales/by-store", reportHandler.SalesByStore)
	reportRoutes.GET("/sales/top-items", reportHandler.TopItems)
	reportRoutes.GET("/sales/by-customer-type", reportHandler.SalesByCustomerType)
	reportRoutes.GET("/sales/quarterly", reportHandler.QuarterlySales)
	reportRoutes.GET("/inventory/stock-levels", reportHandler.StockLevels)
	reportRoutes.GET("/inventory/low-stock", reportHandler.LowStock)
	reportRoutes.GET("/inventory/movements", reportHandler.StockMovements)
	reportRoutes.GET("/transport/train-utilization", reportHandler.TrainUtilization)
	reportRoutes.GET("/transport/truck-route-usage", reportHandler.TruckRouteUsage)
	reportRoutes.GET("/transport/staff-hours", reportHandler.StaffHours)

	// User administration (main manager only)
	userRoutes := router.NewDomainGroup("identity", "/users")
	userRoutes.Use(middleware.RequireMainManager())
	userRoutes.POST("", middleware.AuditLog(auditService, "user"), userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.POST("/:id/activate", middleware.AuditLog(auditService, "user"), userHandler.Activate)
	userRoutes.POST("/:id/deactivate", middleware.AuditLog(auditService, "user"), userHandler.Deactivate)
	userRoutes.POST("/:id/unlock", middleware.AuditLog(auditService, "user"), userHandler.Unlock)
	userRoutes.POST("/:id/reset-password", middleware.AuditLog(auditService, "user"), userHandler.ResetPassword)
	userRoutes.PUT("/:id/store", middleware.AuditLog(auditService, "user"), userHandler.AssignStore)
	userRoutes.DELETE("/:id", middleware.AuditLog(auditService, "user"), userHandler.Delete)

	// Audit trail (main manager only)
	auditRoutes := router.NewDomainGroup("audit", "/audit")
	auditRoutes.Use(middleware.RequireMainManager())
	auditRoutes.GET("/users/:user_id", auditHandler.ListByUser)
	auditRoutes.GET("/resources", auditHandler.ListByResource)

	// System endpoints (ping and info are public via skip paths)
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.Info)

	r.Register(authRoutes).
		Register(catalogRoutes).
		Register(cartRoutes).
		Register(customerRoutes).
		Register(orderRoutes).
		Register(inventoryRoutes).
		Register(storeRoutes).
		Register(fleetRoutes).
		Register(scheduleRoutes).
		Register(staffRoutes).
		Register(reportRoutes).
		Register(userRoutes).
		Register(auditRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
