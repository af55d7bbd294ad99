// File: cuidarmais/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuidarmais/backend"
	"cuidarmais/config"
	"cuidarmais/handlers"
	"cuidarmais/middleware"
	"cuidarmais/routes"
	agendaSvc "cuidarmais/services/agenda"
	authSvc "cuidarmais/services/auth"
	patientsSvc "cuidarmais/services/patients"
	scheduleSvc "cuidarmais/services/schedule"
	"cuidarmais/session"
	"cuidarmais/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	utils.InitSessionCache()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.SetFuncMap(routes.TemplateFuncs())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Remote API client and session store.
	apiClient := backend.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout, logger)
	sessionStore := session.NewStore(utils.GetSessionCacheClient(), config.AppConfig.SessionTTL)

	// services.
	authService := &authSvc.DefaultService{
		API:      apiClient,
		Sessions: sessionStore,
		Logger:   logger,
	}
	patientService := &patientsSvc.DefaultListService{
		API:    apiClient,
		Logger: logger,
	}
	agendaService := &agendaSvc.DefaultService{
		API:    apiClient,
		Logger: logger,
	}
	scheduleService := &scheduleSvc.DefaultService{
		API:    apiClient,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(sessionStore, authService)
	patientsHandler := handlers.NewPatientsHandler(sessionStore, patientService)
	patientFormHandler := handlers.NewPatientFormHandler(sessionStore, apiClient, scheduleService)
	agendaHandler := handlers.NewAgendaHandler(sessionStore, agendaService, agendaSvc.ClearSelectionOnNavigate)
	scheduleHandler := handlers.NewScheduleHandler(sessionStore, scheduleService)
	profileHandler := handlers.NewProfileHandler(sessionStore, apiClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionStore,

		// Auth endpoints.
		LoginPageHandler:   authHandler.LoginPageHandler,
		LoginSubmitHandler: authHandler.LoginSubmitHandler,
		LogoutHandler:      authHandler.LogoutHandler,

		// Patient list endpoints.
		ListPatientsHandler:             patientsHandler.ListPatientsHandler,
		DeactivatePatientHandler:        patientsHandler.DeactivatePatientHandler,
		ReactivatePatientHandler:        patientsHandler.ReactivatePatientHandler,
		CreateAdditionalSessionsHandler: patientsHandler.CreateAdditionalSessionsHandler,

		// Patient form endpoints.
		NewPatientPageHandler:  patientFormHandler.NewPatientPageHandler,
		CreatePatientHandler:   patientFormHandler.CreatePatientHandler,
		EditPatientPageHandler: patientFormHandler.EditPatientPageHandler,
		UpdatePatientHandler:   patientFormHandler.UpdatePatientHandler,
		SlotOptionsHandler:     patientFormHandler.SlotOptionsHandler,

		// Agenda endpoints.
		AgendaPageHandler:     agendaHandler.AgendaPageHandler,
		ConfirmSessionHandler: agendaHandler.ConfirmSessionHandler,
		MissedSessionHandler:  agendaHandler.MissedSessionHandler,
		CancelSessionHandler:  agendaHandler.CancelSessionHandler,

		// Schedule configuration endpoints.
		ScheduleConfigPageHandler:   scheduleHandler.ScheduleConfigPageHandler,
		SaveScheduleConfigHandler:   scheduleHandler.SaveScheduleConfigHandler,
		InitializeScheduleHandler:   scheduleHandler.InitializeScheduleHandler,
		DeleteScheduleConfigHandler: scheduleHandler.DeleteScheduleConfigHandler,

		// Profile endpoints.
		UploadProfileImageHandler: profileHandler.UploadImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4200"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
