package controllers

import (
	"net/http"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// CreateReviewRequest is the request body for POST /reviews.
type CreateReviewRequest struct {
	ReservationID int64  `json:"reservation_id" validate:"gt=0"`
	Title         string `json:"title" validate:"required,max=100"`
	Content       string `json:"content" validate:"required,max=4000"`
}

// Validate implements Validator.
func (c CreateReviewRequest) Validate() []string {
	return h.ValidateStruct(c)
}

// UpdateReviewRequest is the request body for PUT /reviews/{reviewID}.
type UpdateReviewRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=4000"`
}

// Validate implements Validator.
func (u UpdateReviewRequest) Validate() []string {
	return h.ValidateStruct(u)
}

// ReviewListResponse is one page of reviews.
type ReviewListResponse struct {
	Items  []*domain.Review `json:"items"`
	Paging PageMeta         `json:"paging"`
}

// ReviewListSuccessResponse is the success envelope for GET /reviews (200).
type ReviewListSuccessResponse struct {
	Data  ReviewListResponse `json:"data"`
	Error *h.APIError        `json:"error"`
}

// ReviewSuccessResponse is the success envelope for a single review.
type ReviewSuccessResponse struct {
	Data  *domain.Review `json:"data"`
	Error *h.APIError    `json:"error"`
}

type ReviewController struct {
	Logger  *zap.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *zap.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List reviews
// @Description Returns one page of reviews, newest first. Missing or non-numeric page means 1; out-of-range pages are clamped.
// @Tags reviews
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} controllers.ReviewListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews [get]
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Service.ListPage(r.Context(), h.ParsePage(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ReviewListResponse{
		Items:  page.Items,
		Paging: newPageMeta(page.Pagination, page.Total),
	})
}

// Get godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param reviewID path int true "Review ID"
// @Success 200 {object} controllers.ReviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reviews/{reviewID} [get]
func (c *ReviewController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "reviewID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	rv, err := c.Service.Get(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rv)
}

// Create godoc
// @Summary Write a review
// @Description Reviews one of the caller's own reservations. Each reservation can be reviewed once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateReviewRequest true "Review"
// @Success 201 {object} controllers.ReviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /reviews [post]
func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateReviewRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	rv := &domain.Review{ReservationID: req.ReservationID, Title: req.Title, Content: req.Content}
	if err := c.Service.Add(r.Context(), actor, rv); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, rv)
}

// Update godoc
// @Summary Edit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewID path int true "Review ID"
// @Param body body UpdateReviewRequest true "Review"
// @Success 200 {object} controllers.ReviewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reviews/{reviewID} [put]
func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id, err := h.PathID(r, "reviewID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	var req UpdateReviewRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	rv, err := c.Service.Update(r.Context(), actor, id, req.Title, req.Content)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rv)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param reviewID path int true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reviews/{reviewID} [delete]
func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id, err := h.PathID(r, "reviewID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), actor, id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
