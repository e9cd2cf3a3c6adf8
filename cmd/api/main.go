package main

import (
	"fmt"
	"net/http"

	"github.com/salonova/scheduling-backend-go/internal/config"
	appHTTP "github.com/salonova/scheduling-backend-go/internal/handler/http"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
	"github.com/salonova/scheduling-backend-go/internal/pkg/jwt"
	"github.com/salonova/scheduling-backend-go/internal/pkg/metrics"
	"github.com/salonova/scheduling-backend-go/internal/repository/postgresql"
	authService "github.com/salonova/scheduling-backend-go/internal/service/auth"
	performanceService "github.com/salonova/scheduling-backend-go/internal/service/performance"
	"github.com/salonova/scheduling-backend-go/internal/service/scheduling"
	timeoffService "github.com/salonova/scheduling-backend-go/internal/service/timeoff"
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
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	weeklyScheduleRepo := postgresql.NewWeeklyScheduleRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	appointmentRepo := postgresql.NewAppointmentRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	earningRepo := postgresql.NewEarningRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	appMetrics := metrics.New("salonova-scheduling")

	authSvc := authService.NewAuthService(cfg.Admin, JWTService)
	availabilitySvc := scheduling.NewAvailabilityService(weeklyScheduleRepo, staffRepo, timeOffRepo)
	utilizationSvc := scheduling.NewUtilizationService(weeklyScheduleRepo, breakRepo, appointmentRepo, staffRepo)
	managementSvc := scheduling.NewManagementService(db, weeklyScheduleRepo, breakRepo, staffRepo)
	timeOffSvc := timeoffService.NewService(timeOffRepo, staffRepo)
	performanceSvc := performanceService.NewService(appointmentRepo, reviewRepo, earningRepo, staffRepo)

	router := appHTTP.NewRouter(cfg, appHTTP.RouterDeps{
		JWTService:          JWTService,
		Metrics:             appMetrics,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc),
		AvailabilityHandler: appHTTP.NewAvailabilityHandler(availabilitySvc),
		ScheduleHandler:     appHTTP.NewScheduleHandler(managementSvc, utilizationSvc),
		TimeOffHandler:      appHTTP.NewTimeOffHandler(timeOffSvc),
		PerformanceHandler:  appHTTP.NewPerformanceHandler(performanceSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
