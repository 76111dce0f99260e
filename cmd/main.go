package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/poofware/employee-service/internal/app"
	"github.com/poofware/employee-service/internal/config"
	"github.com/poofware/employee-service/internal/controllers"
	"github.com/poofware/employee-service/internal/middleware"
	"github.com/poofware/employee-service/internal/routes"
	"github.com/poofware/employee-service/internal/services"
	"github.com/poofware/employee-service/internal/utils"
	"github.com/poofware/employee-service/internal/validation"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (storage + repository)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Services
	employeeService := services.NewEmployeeService(application.EmployeeRepo)

	// 4) Controllers
	healthCtrl := controllers.NewHealthController(application)
	employeesCtrl := controllers.NewEmployeesController(employeeService, validation.NewEmployeeValidator())

	// 5) Router
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.RequestLogger)
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Employees, employeesCtrl.ListEmployeesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Employees, employeesCtrl.CreateEmployeeHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.EmployeeByID, employeesCtrl.GetEmployeeHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.EmployeeByID, employeesCtrl.UpdateEmployeeHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.EmployeeBenefits, employeesCtrl.ListEmployeeBenefitsHandler).Methods(http.MethodGet)

	// 6) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
