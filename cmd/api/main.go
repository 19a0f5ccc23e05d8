package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stafflog/attendance-backend-go/internal/config"
	appHTTP "github.com/stafflog/attendance-backend-go/internal/handler/http"
	"github.com/stafflog/attendance-backend-go/internal/metrics"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
	"github.com/stafflog/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflog/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/stafflog/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/stafflog/attendance-backend-go/internal/service/employee"
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

	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(registry)

	employeeRepo := postgresql.NewEmployeeRepository(db.Pool, appMetrics)
	attendanceRepo := postgresql.NewAttendanceRepository(db.Pool, appMetrics)
	dashboardRepo := postgresql.NewDashboardRepository(db.Pool, appMetrics)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, registry, employeeHandler, attendanceHandler, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
