package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffhub/wfm-backend-go/internal/config"
	appHTTP "github.com/staffhub/wfm-backend-go/internal/handler/http"
	"github.com/staffhub/wfm-backend-go/internal/pkg/database"
	"github.com/staffhub/wfm-backend-go/internal/pkg/jwt"
	"github.com/staffhub/wfm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/wfm-backend-go/internal/service/attendance"
	reportService "github.com/staffhub/wfm-backend-go/internal/service/report"
	scheduleService "github.com/staffhub/wfm-backend-go/internal/service/schedule"
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

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading attendance timezone:", err)
		return
	}

	eventLogRepo := postgresql.NewEventLogRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveDayRepo := postgresql.NewLeaveDayRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	workingDaysCalc := scheduleService.NewWorkingDaysCalculator(
		scheduleService.ParseWeekendSet(cfg.Attendance.WeekendDays),
	)

	policy := cfg.Attendance.Policy()
	attendanceSvc := attendanceService.NewAttendanceService(
		eventLogRepo,
		employeeRepo,
		policy,
		loc,
	)
	reportSvc := reportService.NewReportService(
		eventLogRepo,
		employeeRepo,
		leaveDayRepo,
		holidayRepo,
		workingDaysCalc,
		policy,
		loc,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
