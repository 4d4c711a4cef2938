package controllers

import (
	"net/http"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
)

// EmployeeImageRequest is the request body for PUT /headoffice/employees/{employeeID}/image.
type EmployeeImageRequest struct {
	OriginName  string `json:"origin_name" validate:"required,max=255"`
	Size        int64  `json:"size" validate:"gt=0,lte=10485760"`
	ContentType string `json:"content_type" validate:"required,startswith=image/"`
}

// Validate implements Validator.
func (e EmployeeImageRequest) Validate() []string {
	return h.ValidateStruct(e)
}

// EmployeeImageSuccessResponse is the success envelope for employee image endpoints.
type EmployeeImageSuccessResponse struct {
	Data  *domain.EmployeeImage `json:"data"`
	Error *h.APIError           `json:"error"`
}

type EmployeeImageController struct {
	Logger  *zap.Logger
	Service domain.EmployeeImageService
}

func NewEmployeeImageController(logger *zap.Logger, svc domain.EmployeeImageService) *EmployeeImageController {
	return &EmployeeImageController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get an employee's profile image metadata
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} controllers.EmployeeImageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /headoffice/employees/{employeeID}/image [get]
func (c *EmployeeImageController) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.PathID(r, "employeeID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	img, err := c.Service.Get(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, img)
}

// Put godoc
// @Summary Set an employee's profile image metadata
// @Description Replaces the employee's image record. The stored filename is generated by the server.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employeeID path int true "Employee ID"
// @Param body body EmployeeImageRequest true "Image metadata"
// @Success 200 {object} controllers.EmployeeImageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /headoffice/employees/{employeeID}/image [put]
func (c *EmployeeImageController) Put(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	employeeID, err := h.PathID(r, "employeeID")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	var req EmployeeImageRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	img := &domain.EmployeeImage{
		EmployeeID:  employeeID,
		OriginName:  req.OriginName,
		Size:        req.Size,
		ContentType: req.ContentType,
	}
	if err := c.Service.Set(r.Context(), actor, img); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, img)
}
