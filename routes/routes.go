package routes

import (
	"html/template"
	"net/http"
	"time"

	"cuidarmais/handlers"
	"cuidarmais/middleware"
	"cuidarmais/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// TemplateFuncs are the helpers available to every page template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatHora": utils.FormatTimeHM,
		"formatData": utils.FormatDateBR,
		"diaSemana":  utils.WeekdayNamePT,
		"idade": func(dataNascimento string) int {
			return utils.AgeFromBirthDate(dataNascimento, time.Now())
		},
		"iniciais":  utils.Initials,
		"imagemSrc": utils.ImageDataURL,
		"avatar":    utils.SniffImageDataURL,
		"whatsapp":  utils.WhatsAppLink,
	}
}

// RegisterAuthRoutes registers the public login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/login", hb.LoginPageHandler)
	r.POST("/login", hb.LoginSubmitHandler)
}

// RegisterPatientRoutes registers the patient list and form endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pacientes := r.Group("/pacientes")
	{
		pacientes.Use(middleware.RequireSession(hb.Sessions))
		pacientes.GET("", hb.ListPatientsHandler)
		pacientes.GET("/cadastrar", hb.NewPatientPageHandler)
		pacientes.POST("/cadastrar", hb.CreatePatientHandler)
		pacientes.GET("/editar/:id", hb.EditPatientPageHandler)
		pacientes.POST("/editar/:id", hb.UpdatePatientHandler)
		pacientes.GET("/horarios", hb.SlotOptionsHandler)
		pacientes.POST("/:id/inativar", hb.DeactivatePatientHandler)
		pacientes.POST("/:id/reativar", hb.ReactivatePatientHandler)
		pacientes.POST("/:id/sessoes-adicionais", hb.CreateAdditionalSessionsHandler)
	}
}

// RegisterAgendaRoutes registers the calendar and session action endpoints.
func RegisterAgendaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	agenda := r.Group("/agenda")
	{
		agenda.Use(middleware.RequireSession(hb.Sessions))
		agenda.GET("", hb.AgendaPageHandler)
		agenda.POST("/sessoes/:id/confirmar", hb.ConfirmSessionHandler)
		agenda.POST("/sessoes/:id/faltou", hb.MissedSessionHandler)
		agenda.POST("/sessoes/:id/cancelar", hb.CancelSessionHandler)
	}
}

// RegisterScheduleRoutes registers the weekly configuration endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	config := r.Group("/configuracoes")
	{
		config.Use(middleware.RequireSession(hb.Sessions))
		config.GET("", hb.ScheduleConfigPageHandler)
		config.POST("", hb.SaveScheduleConfigHandler)
		config.POST("/inicializar", hb.InitializeScheduleHandler)
		config.POST("/:id/excluir", hb.DeleteScheduleConfigHandler)
	}
}

// RegisterProfileRoutes registers the signed-in practitioner endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	perfil := r.Group("")
	{
		perfil.Use(middleware.RequireSession(hb.Sessions))
		perfil.POST("/perfil/imagem", hb.UploadProfileImageHandler)
		perfil.GET("/logout", hb.LogoutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Cuidar+ no ar"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/pacientes")
	})

	RegisterAuthRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAgendaRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}
