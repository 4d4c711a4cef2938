package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// EquipmentRequest is the request body for creating or updating equipment.
type EquipmentRequest struct {
	ItemName  string `json:"item_name" validate:"required,max=100"`
	ItemPrice int64  `json:"item_price" validate:"gte=0"`
}

// Validate implements Validator.
func (e EquipmentRequest) Validate() []string {
	e.ItemName = strings.TrimSpace(e.ItemName)
	return h.ValidateStruct(e)
}

// EquipmentListResponse is one page of equipment.
type EquipmentListResponse struct {
	Items  []*domain.Equipment     `json:"items"`
	Paging PageMeta                `json:"paging"`
	Filter *domain.EquipmentFilter `json:"filter,omitempty"`
}

// EquipmentListSuccessResponse is the success envelope for equipment listings (200).
type EquipmentListSuccessResponse struct {
	Data  EquipmentListResponse `json:"data"`
	Error *h.APIError           `json:"error"`
}

// EquipmentSuccessResponse is the success envelope for a single equipment item.
type EquipmentSuccessResponse struct {
	Data  *domain.Equipment `json:"data"`
	Error *h.APIError       `json:"error"`
}

type EquipmentController struct {
	Logger  *zap.Logger
	Service domain.EquipmentService
}

func NewEquipmentController(logger *zap.Logger, svc domain.EquipmentService) *EquipmentController {
	return &EquipmentController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List equipment
// @Description Returns one page of equipment, newest first. Missing or non-numeric page means 1; out-of-range pages are clamped.
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} controllers.EquipmentListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /headoffice/equipment [get]
func (c *EquipmentController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Service.ListPage(r.Context(), h.ParsePage(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, EquipmentListResponse{
		Items:  page.Items,
		Paging: newPageMeta(page.Pagination, page.Total),
	})
}

// Search godoc
// @Summary Search equipment
// @Description Searches equipment by item name (type=name) or active flag (type=active, keyword Y or N).
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param type query string false "Search type" Enums(name, active)
// @Param keyword query string false "Keyword"
// @Param page query int false "Page number"
// @Success 200 {object} controllers.EquipmentListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /headoffice/equipment/search [get]
func (c *EquipmentController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{Type: q.Get("type"), Keyword: q.Get("keyword")}
	page, err := c.Service.SearchPage(r.Context(), filter, h.ParsePage(r))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, EquipmentListResponse{
		Items:  page.Items,
		Paging: newPageMeta(page.Pagination, page.Total),
		Filter: &filter,
	})
}

// Get godoc
// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param equipmentID path int true "Equipment ID"
// @Success 200 {object} controllers.EquipmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /headoffice/equipment/{equipmentID} [get]
func (c *EquipmentController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.PathID(r, "equipmentID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	eq, err := c.Service.Get(r.Context(), id)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, eq)
}

// Create godoc
// @Summary Register equipment
// @Description Registers a new active equipment item. The authenticated employee is recorded as registrant.
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EquipmentRequest true "Equipment"
// @Success 201 {object} controllers.EquipmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /headoffice/equipment [post]
func (c *EquipmentController) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req EquipmentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	eq := &domain.Equipment{ItemName: req.ItemName, ItemPrice: req.ItemPrice}
	if err := c.Service.Add(r.Context(), actor, eq); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, eq)
}

// Update godoc
// @Summary Update equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipmentID path int true "Equipment ID"
// @Param body body EquipmentRequest true "Equipment"
// @Success 200 {object} controllers.EquipmentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /headoffice/equipment/{equipmentID} [put]
func (c *EquipmentController) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id, err := h.PathID(r, "equipmentID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	var req EquipmentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	eq, err := c.Service.Update(r.Context(), actor, id, domain.EquipmentUpdate{ItemName: req.ItemName, ItemPrice: req.ItemPrice})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, eq)
}

// Deactivate godoc
// @Summary Deactivate equipment
// @Tags equipment
// @Security BearerAuth
// @Param equipmentID path int true "Equipment ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /headoffice/equipment/{equipmentID}/deactivate [post]
func (c *EquipmentController) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id, err := h.PathID(r, "equipmentID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.Deactivate(r.Context(), actor, id); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
