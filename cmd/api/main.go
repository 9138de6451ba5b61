package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/nzdigital/capdev-backend-go/internal/config"
	appHTTP "github.com/nzdigital/capdev-backend-go/internal/handler/http"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/cron"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/ipayroll"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/jira"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/jwt"
	"github.com/nzdigital/capdev-backend-go/internal/repository/postgresql"
	employeeService "github.com/nzdigital/capdev-backend-go/internal/service/employee"
	leaveService "github.com/nzdigital/capdev-backend-go/internal/service/leave"
	"github.com/nzdigital/capdev-backend-go/internal/service/master"
	reportService "github.com/nzdigital/capdev-backend-go/internal/service/report"
	syncService "github.com/nzdigital/capdev-backend-go/internal/service/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	boardRepo := postgresql.NewBoardRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	gtaRepo := postgresql.NewGeneralTimeAssignmentRepository(db)
	timeTypeRepo := postgresql.NewTimeTypeRepository(db, logger)
	projectRepo := postgresql.NewProjectRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	tokenRepo := postgresql.NewOAuthTokenRepository(db)
	reportRepo := postgresql.NewReportRepository(db, teamRepo, roleRepo, timeTypeRepo, gtaRepo, leaveRepo)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	jiraClient := jira.NewClient(cfg.Jira, logger)
	ipayrollService := ipayroll.NewService(cfg.IPayroll)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, assignmentRepo)
	masterSvc := master.NewMasterService(teamRepo, boardRepo, roleRepo, gtaRepo, timeTypeRepo, projectRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Report, logger)
	syncSvc := syncService.NewSyncService(
		boardRepo,
		projectRepo,
		activityRepo,
		employeeRepo,
		leaveRepo,
		tokenRepo,
		jiraClient,
		ipayrollService,
		logger,
	)

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	syncHandler := appHTTP.NewSyncHandler(syncSvc)
	authHandler := appHTTP.NewAuthHandler(ipayrollService, syncSvc, cfg.App.FrontendURL)

	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("jira-sync", cfg.Sync.JiraInterval, func(ctx context.Context) error {
		_, err := syncSvc.SyncJira(ctx)
		return err
	})
	scheduler.AddJob("ipayroll-sync", cfg.Sync.IPayrollInterval, func(ctx context.Context) error {
		_, err := syncSvc.SyncIPayroll(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		reportHandler,
		employeeHandler,
		masterHandler,
		leaveHandler,
		syncHandler,
		authHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
