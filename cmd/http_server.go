package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/attendance"
	attendancePostgres "github.com/adminrec/personnel-management/internal/attendance/postgres"
	"github.com/adminrec/personnel-management/internal/auth"
	authPostgres "github.com/adminrec/personnel-management/internal/auth/postgres"
	"github.com/adminrec/personnel-management/internal/core/events"
	"github.com/adminrec/personnel-management/internal/employee"
	employeePostgres "github.com/adminrec/personnel-management/internal/employee/postgres"
	"github.com/adminrec/personnel-management/internal/position"
	positionPostgres "github.com/adminrec/personnel-management/internal/position/postgres"
	"github.com/adminrec/personnel-management/internal/request"
	requestPostgres "github.com/adminrec/personnel-management/internal/request/postgres"
	"github.com/adminrec/personnel-management/internal/sector"
	sectorPostgres "github.com/adminrec/personnel-management/internal/sector/postgres"
	"github.com/adminrec/personnel-management/internal/transport/rest"
	"github.com/adminrec/personnel-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	log := logger.L()

	validateAPISpec(log)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	bus := events.NewEventBus(log)
	subscribeAuditHandlers(bus, log)

	// repositories
	accountRepo := authPostgres.NewAccountRepository(gormDB)
	employeeDirectory := authPostgres.NewEmployeeDirectory(gormDB)
	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	sectorRepo := sectorPostgres.NewSectorRepository(gormDB)
	positionRepo := positionPostgres.NewPositionRepository(gormDB)
	attendanceRepo := attendancePostgres.NewAttendanceRepository(gormDB)
	requestRepo := requestPostgres.NewRequestRepository(gormDB)

	// services
	tokenService := auth.NewJWTTokenService(config.Security.JWTSecret, config.Security.TokenTTL)
	authService := auth.NewService(accountRepo, employeeDirectory, tokenService, config.Security.Argon2, log)
	employeeService := employee.NewService(employeeRepo, authService, employeeRepo, log)
	sectorService := sector.NewService(sectorRepo, sectorRepo, accountRepo, bus, log)
	positionService := position.NewService(positionRepo, positionRepo, log)
	attendanceService := attendance.NewService(attendanceRepo, log)
	requestService := request.NewService(requestRepo, bus, log)

	// handlers
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	sectorHandler := sector.NewHandler(sectorService)
	positionHandler := position.NewHandler(positionService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	requestHandler := request.NewHandler(requestService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(
		router,
		db.DB,
		authHandler,
		employeeHandler,
		sectorHandler,
		positionHandler,
		attendanceHandler,
		requestHandler,
		log,
	)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// validateAPISpec checks the served OpenAPI document. An invalid document is
// logged but does not block startup.
func validateAPISpec(log *slog.Logger) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		log.Warn("could not load OpenAPI spec", "error", err)
		return
	}
	if err := doc.Validate(loader.Context); err != nil {
		log.Warn("OpenAPI spec is invalid", "error", err)
	}
}

// subscribeAuditHandlers logs domain events as an audit trail.
func subscribeAuditHandlers(bus *events.EventBus, log *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		log.Info("audit event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
	bus.Subscribe(events.EventSupervisorsReassigned, audit)
	bus.Subscribe(events.EventRequestStatusChanged, audit)
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
