package http

import (
	"net/http"

	"clinic-scheduling-api/internal/delivery/http/handler"
	"clinic-scheduling-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	termHandler     *handler.TermHandler
	visitHandler    *handler.VisitHandler
	catalogHandler  *handler.CatalogHandler
	doctorHandler   *handler.DoctorHandler
	patientHandler  *handler.PatientHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	termHandler *handler.TermHandler,
	visitHandler *handler.VisitHandler,
	catalogHandler *handler.CatalogHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		termHandler:     termHandler,
		visitHandler:    visitHandler,
		catalogHandler:  catalogHandler,
		doctorHandler:   doctorHandler,
		patientHandler:  patientHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Catalog routes (public reads)
	api.HandleFunc("/specializations", r.catalogHandler.GetAllSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/procedures", r.catalogHandler.GetAllProcedures).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Authenticated routes shared by every role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/specializations/{id}/schedule", r.catalogHandler.GetSpecializationSchedule).Methods(http.MethodGet)
	protected.HandleFunc("/offices", r.catalogHandler.GetAllOffices).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/week", r.termHandler.GetDoctorWeek).Methods(http.MethodGet)
	protected.HandleFunc("/terms", r.termHandler.SearchTerms).Methods(http.MethodGet)
	protected.HandleFunc("/terms/{id:[0-9]+}", r.termHandler.GetTerm).Methods(http.MethodGet)

	// Doctor routes
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/terms", r.termHandler.CreateTerm).Methods(http.MethodPost)
	doctor.HandleFunc("/terms/batch", r.termHandler.CreateTermBatch).Methods(http.MethodPost)
	doctor.HandleFunc("/doctors/me", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)

	// Term cancellation is open to the owning doctor and admins
	termCancel := api.PathPrefix("").Subrouter()
	termCancel.Use(r.authMiddleware.Authenticate)
	termCancel.Use(middleware.RequireAdminOrDoctor)
	termCancel.HandleFunc("/terms/{id:[0-9]+}", r.termHandler.CancelTerm).Methods(http.MethodDelete)

	// Patient routes
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/visits", r.visitHandler.BookVisit).Methods(http.MethodPost)
	patient.HandleFunc("/patients/me", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/patients/me", r.patientHandler.UpdateProfile).Methods(http.MethodPut)

	// Visit routes shared by patients, doctors and admins
	visits := api.PathPrefix("").Subrouter()
	visits.Use(r.authMiddleware.Authenticate)
	visits.HandleFunc("/visits", r.visitHandler.GetMyVisits).Methods(http.MethodGet)
	visits.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.GetVisit).Methods(http.MethodGet)
	visits.HandleFunc("/visits/{id:[0-9]+}", r.visitHandler.CancelVisit).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/specializations", r.catalogHandler.CreateSpecialization).Methods(http.MethodPost)
	admin.HandleFunc("/specializations/{id}", r.catalogHandler.DeleteSpecialization).Methods(http.MethodDelete)
	admin.HandleFunc("/procedures", r.catalogHandler.CreateProcedure).Methods(http.MethodPost)
	admin.HandleFunc("/procedures/{id}", r.catalogHandler.DeleteProcedure).Methods(http.MethodDelete)
	admin.HandleFunc("/offices", r.catalogHandler.CreateOffice).Methods(http.MethodPost)
	admin.HandleFunc("/offices/{id}", r.catalogHandler.DeleteOffice).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
