package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// ReserveRequest is the request body for POST /customer/reservations.
type ReserveRequest struct {
	ProgramDateID int64 `json:"program_date_id" validate:"gt=0"`
}

// Validate implements Validator.
func (r ReserveRequest) Validate() []string {
	return h.ValidateStruct(r)
}

// CustomerPaymentResponse is the response body for GET /customer/payment.
type CustomerPaymentResponse struct {
	LoginID string          `json:"login_id"`
	Payment *domain.Payment `json:"payment"`
}

// ProgramDatesSuccessResponse is the success envelope for program date listings (200).
type ProgramDatesSuccessResponse struct {
	Data  []*domain.ProgramDate `json:"data"`
	Error *h.APIError           `json:"error"`
}

// ProgramDateDetailSuccessResponse is the success envelope for GET /customer/programs/{programDateID} (200).
type ProgramDateDetailSuccessResponse struct {
	Data  *domain.ProgramDateDetail `json:"data"`
	Error *h.APIError               `json:"error"`
}

// ReservationSuccessResponse is the success envelope for POST /customer/reservations (201).
type ReservationSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *h.APIError         `json:"error"`
}

// ReservationsSuccessResponse is the success envelope for GET /customer/reservations (200).
type ReservationsSuccessResponse struct {
	Data  []*domain.Reservation `json:"data"`
	Error *h.APIError           `json:"error"`
}

// CustomerPaymentSuccessResponse is the success envelope for GET /customer/payment (200).
type CustomerPaymentSuccessResponse struct {
	Data  CustomerPaymentResponse `json:"data"`
	Error *h.APIError             `json:"error"`
}

type ProgramReservationController struct {
	Logger  *zap.Logger
	Service domain.ProgramReservationService
	Now     func() time.Time
}

func NewProgramReservationController(logger *zap.Logger, svc domain.ProgramReservationService) *ProgramReservationController {
	return &ProgramReservationController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// yearMonth reads the year and month query parameters. Missing values default
// to the current year and month.
func (c *ProgramReservationController) yearMonth(r *http.Request) (int, time.Month, error) {
	now := c.Now()
	year, month := now.Year(), now.Month()
	q := r.URL.Query()
	if s := q.Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", s)
		}
		year = v
	}
	if s := q.Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", s)
		}
		month = time.Month(v)
	}
	return year, month, nil
}

func (c *ProgramReservationController) customer(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return actor, true
}

// ListPrograms godoc
// @Summary List program dates of a month
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} controllers.ProgramDatesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /customer/programs [get]
func (c *ProgramReservationController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	year, month, err := c.yearMonth(r)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	dates, err := c.Service.ListProgramsByMonth(r.Context(), year, month)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, dates)
}

// Calendar godoc
// @Summary List upcoming program dates
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ProgramDatesSuccessResponse
// @Router /customer/calendar [get]
func (c *ProgramReservationController) Calendar(w http.ResponseWriter, r *http.Request) {
	dates, err := c.Service.ListCalendar(r.Context())
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, dates)
}

// MyCalendar godoc
// @Summary List the caller's reserved program dates of a month
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Param month query int false "Month 1-12 (default: current)"
// @Success 200 {object} controllers.ProgramDatesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /customer/calendar/me [get]
func (c *ProgramReservationController) MyCalendar(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	year, month, err := c.yearMonth(r)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	dates, err := c.Service.ListMyCalendar(r.Context(), actor.ID, year, month)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, dates)
}

// GetProgramDate godoc
// @Summary Get a program date
// @Description Includes the reserved count and whether the caller already reserved it.
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param programDateID path int true "Program date ID"
// @Success 200 {object} controllers.ProgramDateDetailSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /customer/programs/{programDateID} [get]
func (c *ProgramReservationController) GetProgramDate(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "programDateID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	detail, err := c.Service.GetProgramDate(r.Context(), id, actor.ID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Payment godoc
// @Summary Get the caller's active membership payment
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CustomerPaymentSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /customer/payment [get]
func (c *ProgramReservationController) Payment(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	loginID, err := c.Service.CustomerLoginID(r.Context(), actor.ID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	pay, err := c.Service.CustomerPayment(r.Context(), actor.ID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CustomerPaymentResponse{LoginID: loginID, Payment: pay})
}

// Reserve godoc
// @Summary Reserve a program date
// @Description Requires an active membership. A confirmation email is sent on success.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReserveRequest true "Program date"
// @Success 201 {object} controllers.ReservationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /customer/reservations [post]
func (c *ProgramReservationController) Reserve(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	var req ReserveRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Reserve(r.Context(), actor, req.ProgramDateID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, res)
}

// ListMine godoc
// @Summary List the caller's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ReservationsSuccessResponse
// @Router /customer/reservations [get]
func (c *ProgramReservationController) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	list, err := c.Service.ListMine(r.Context(), actor.ID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, list)
}

// Cancel godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Security BearerAuth
// @Param reservationID path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /customer/reservations/{reservationID} [delete]
func (c *ProgramReservationController) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := c.customer(w, r)
	if !ok {
		return
	}
	id, err := h.PathID(r, "reservationID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.Cancel(r.Context(), actor, id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
