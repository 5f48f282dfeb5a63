package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-service/internal/api/http"
	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/persistence"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
	"github.com/spec-kit/hr-service/internal/storage"
	"github.com/spec-kit/hr-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	files, err := storage.NewLocalStorage(cfg.Storage.MediaRoot)
	if err != nil {
		logger.Fatal("failed to prepare media root", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	payrollRepo := repository.NewPayrollRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	auditService := service.NewAuditService(service.AuditDependencies{
		Dispatcher:   dispatcher,
		AdminLogRepo: repository.NewAdminLogRepository(pool),
		Publisher:    persistence.NewChangeStream(redis.Client, cfg.Audit),
		Metrics:      metrics,
		Logger:       logger,
	})
	worker.StartAuditWorker(auditService)

	peopleService := service.NewPeopleService(*cfg, service.PeopleDependencies{
		UserRepo:     userRepo,
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	orgService := service.NewOrgService(service.OrgDependencies{
		DepartmentRepo: departmentRepo,
		HolidayRepo:    holidayRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	attendanceService := service.NewAttendanceService(service.AttendanceDependencies{
		AttendanceRepo: attendanceRepo,
		LeaveRepo:      leaveRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	payrollService := service.NewPayrollService(service.PayrollDependencies{
		PayrollRepo:    payrollRepo,
		EmployeeRepo:   employeeRepo,
		AttendanceRepo: attendanceRepo,
		UserRepo:       userRepo,
		Metrics:        metrics,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	documentService := service.NewDocumentService(service.DocumentDependencies{
		DocumentRepo: documentRepo,
		UserRepo:     userRepo,
		Files:        files,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	reportService := service.NewReportService(service.ReportDependencies{
		AttendanceReportRepo: repository.NewAttendanceReportRepository(pool),
		LeaveReportRepo:      repository.NewLeaveReportRepository(pool),
		PayrollReportRepo:    repository.NewPayrollReportRepository(pool),
		AttendanceRepo:       attendanceRepo,
		LeaveRepo:            leaveRepo,
		PayrollRepo:          payrollRepo,
		UserRepo:             userRepo,
		Dispatcher:           dispatcher,
		Logger:               logger,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.App.BodyLimit(),
		ErrorHandler: httptransport.ErrorHandler(logger),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Admin:       handlers.NewAdminHandler(auditService),
		Users:       handlers.NewUsersHandler(peopleService),
		Employees:   handlers.NewEmployeesHandler(peopleService),
		Departments: handlers.NewDepartmentsHandler(orgService),
		Holidays:    handlers.NewHolidaysHandler(orgService),
		Attendance:  handlers.NewAttendanceHandler(attendanceService),
		Leaves:      handlers.NewLeavesHandler(attendanceService),
		Payrolls:    handlers.NewPayrollsHandler(payrollService),
		Documents:   handlers.NewDocumentsHandler(documentService),
		Reports:     handlers.NewReportsHandler(reportService),
		Gatherer:    registry,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
