package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"gdhealth/internal/delivery/http/controllers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// Controllers groups the handlers served by the router.
type Controllers struct {
	Auth               *controllers.AuthController
	Equipment          *controllers.EquipmentController
	EmployeeImage      *controllers.EmployeeImageController
	ProgramReservation *controllers.ProgramReservationController
	Review             *controllers.ReviewController
	Health             *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier, logger)
	role := func(r string, next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(r)(next))
	}
	headOffice := func(next http.HandlerFunc) http.HandlerFunc { return role(domain.RoleHeadOffice, next) }
	customer := func(next http.HandlerFunc) http.HandlerFunc { return role(domain.RoleCustomer, next) }

	mux.HandleFunc("GET /health", c.Health.Health)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("PUT /auth/password", auth(c.Auth.ChangePassword))

	// Head office: equipment
	mux.HandleFunc("GET /headoffice/equipment", headOffice(c.Equipment.List))
	mux.HandleFunc("GET /headoffice/equipment/search", headOffice(c.Equipment.Search))
	mux.HandleFunc("GET /headoffice/equipment/{equipmentID}", headOffice(c.Equipment.Get))
	mux.HandleFunc("POST /headoffice/equipment", headOffice(c.Equipment.Create))
	mux.HandleFunc("PUT /headoffice/equipment/{equipmentID}", headOffice(c.Equipment.Update))
	mux.HandleFunc("POST /headoffice/equipment/{equipmentID}/deactivate", headOffice(c.Equipment.Deactivate))

	// Head office: employee images
	mux.HandleFunc("GET /headoffice/employees/{employeeID}/image", headOffice(c.EmployeeImage.Get))
	mux.HandleFunc("PUT /headoffice/employees/{employeeID}/image", headOffice(c.EmployeeImage.Put))

	// Customer: programs and reservations
	mux.HandleFunc("GET /customer/programs", customer(c.ProgramReservation.ListPrograms))
	mux.HandleFunc("GET /customer/programs/{programDateID}", customer(c.ProgramReservation.GetProgramDate))
	mux.HandleFunc("GET /customer/calendar", customer(c.ProgramReservation.Calendar))
	mux.HandleFunc("GET /customer/calendar/me", customer(c.ProgramReservation.MyCalendar))
	mux.HandleFunc("GET /customer/payment", customer(c.ProgramReservation.Payment))
	mux.HandleFunc("POST /customer/reservations", customer(c.ProgramReservation.Reserve))
	mux.HandleFunc("GET /customer/reservations", customer(c.ProgramReservation.ListMine))
	mux.HandleFunc("DELETE /customer/reservations/{reservationID}", customer(c.ProgramReservation.Cancel))

	// Reviews
	mux.HandleFunc("GET /reviews", c.Review.List)
	mux.HandleFunc("GET /reviews/{reviewID}", c.Review.Get)
	mux.HandleFunc("POST /reviews", customer(c.Review.Create))
	mux.HandleFunc("PUT /reviews/{reviewID}", customer(c.Review.Update))
	mux.HandleFunc("DELETE /reviews/{reviewID}", customer(c.Review.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
