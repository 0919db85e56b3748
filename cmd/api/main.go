package main

import (
	"fmt"
	"net/http"

	"github.com/jakubK11/timereport/internal/config"
	"github.com/jakubK11/timereport/internal/domain/identity"
	appHTTP "github.com/jakubK11/timereport/internal/handler/http"
	"github.com/jakubK11/timereport/internal/pkg/database"
	"github.com/jakubK11/timereport/internal/pkg/jwt"
	"github.com/jakubK11/timereport/internal/repository/postgresql"
	authService "github.com/jakubK11/timereport/internal/service/auth"
	identityService "github.com/jakubK11/timereport/internal/service/identity"
	reportService "github.com/jakubK11/timereport/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	directory := identity.StaticDirectory(cfg.Access.EmployeeMap)
	scopeResolver := identityService.NewResolver(directory)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	reportSvc := reportService.NewReportService(timeRecordRepo, employeeRepo, projectRepo, scopeResolver)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(JWTService, authHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
