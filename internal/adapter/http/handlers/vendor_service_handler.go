package handlers

import (
	"net/http"

	"tradequote/internal/adapter/http/dto/request"
	"tradequote/internal/adapter/http/dto/response"
	"tradequote/internal/adapter/http/middleware"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VendorServiceHandler lets a vendor manage its service offerings.
type VendorServiceHandler struct {
	usecase usecase.IVendorDirectory
	log     logrus.FieldLogger
}

func NewVendorServiceHandler(uc usecase.IVendorDirectory, log logrus.FieldLogger) *VendorServiceHandler {
	return &VendorServiceHandler{usecase: uc, log: log}
}

// ListServices godoc
// @Summary      List my service offerings
// @Tags         vendor-services
// @Produce      json
// @Success      200  {object}  response.ListResponse[entities.VendorOffering]
// @Router       /vendor-services [get]
func (h *VendorServiceHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.ListOfferings(c.Request.Context(), middleware.ActorFrom(c).Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// CreateService godoc
// @Summary      Create a service offering
// @Tags         vendor-services
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateVendorServiceRequest  true  "Offering"
// @Success      201  {object}  entities.VendorOffering
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /vendor-services [post]
func (h *VendorServiceHandler) CreateService(c *gin.Context) {
	email := middleware.ActorFrom(c).Email
	var body request.CreateVendorServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeInvalidRequest(c, "")
		return
	}

	created, err := h.usecase.CreateOffering(c.Request.Context(), email, body.ToInput())
	if err != nil {
		h.log.WithError(err).WithField("vendor_email", email).Warn("[vendor-service][handler] create failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateService godoc
// @Summary      Update a service offering
// @Tags         vendor-services
// @Accept       json
// @Produce      json
// @Param        service_id  path  string                              true  "Offering ID"
// @Param        body        body  request.UpdateVendorServiceRequest  true  "Changed fields"
// @Success      200  {object}  entities.VendorOffering
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendor-services/{service_id} [put]
func (h *VendorServiceHandler) UpdateService(c *gin.Context) {
	email := middleware.ActorFrom(c).Email
	var body request.UpdateVendorServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeInvalidRequest(c, "")
		return
	}

	updated, err := h.usecase.UpdateOffering(c.Request.Context(), email, c.Param("service_id"), body.ToPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteService godoc
// @Summary      Delete a service offering
// @Tags         vendor-services
// @Param        service_id  path  string  true  "Offering ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendor-services/{service_id} [delete]
func (h *VendorServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteOffering(c.Request.Context(), middleware.ActorFrom(c).Email, c.Param("service_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
