// File: handlers/bundle.go
package handlers

import (
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions *session.Store

	// Auth endpoints
	LoginPageHandler   gin.HandlerFunc
	LoginSubmitHandler gin.HandlerFunc
	LogoutHandler      gin.HandlerFunc

	// Patient list endpoints
	ListPatientsHandler             gin.HandlerFunc
	DeactivatePatientHandler        gin.HandlerFunc
	ReactivatePatientHandler        gin.HandlerFunc
	CreateAdditionalSessionsHandler gin.HandlerFunc

	// Patient form endpoints
	NewPatientPageHandler  gin.HandlerFunc
	CreatePatientHandler   gin.HandlerFunc
	EditPatientPageHandler gin.HandlerFunc
	UpdatePatientHandler   gin.HandlerFunc
	SlotOptionsHandler     gin.HandlerFunc

	// Agenda endpoints
	AgendaPageHandler     gin.HandlerFunc
	ConfirmSessionHandler gin.HandlerFunc
	MissedSessionHandler  gin.HandlerFunc
	CancelSessionHandler  gin.HandlerFunc

	// Schedule configuration endpoints
	ScheduleConfigPageHandler   gin.HandlerFunc
	SaveScheduleConfigHandler   gin.HandlerFunc
	InitializeScheduleHandler   gin.HandlerFunc
	DeleteScheduleConfigHandler gin.HandlerFunc

	// Profile endpoints
	UploadProfileImageHandler gin.HandlerFunc
}
