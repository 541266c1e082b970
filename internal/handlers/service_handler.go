package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ivcho02/mechanic-api/internal/audit"
	"github.com/ivcho02/mechanic-api/internal/cache"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/httpresp"
	"github.com/ivcho02/mechanic-api/internal/models"
)

// ServiceHandler manages the billable service catalog. Reads go through
// the redis cache when one is configured; every write invalidates it.
type ServiceHandler struct {
	services ServiceStore
	catalog  *cache.Catalog
	audit    *audit.Dispatcher
	log      *logrus.Logger
}

func NewServiceHandler(
	services ServiceStore,
	catalog *cache.Catalog,
	dispatcher *audit.Dispatcher,
	log *logrus.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		catalog:  catalog,
		audit:    dispatcher,
		log:      log,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.GetServices(ctx); ok {
		httpresp.List(c, services)
		return
	}

	services, err := h.services.ListServices(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to list services")
		httperr.Internal(c, "failed_to_list_services", "could not list services")
		return
	}

	h.catalog.SetServices(ctx, services)
	httpresp.List(c, services)
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "service_name_required", "service name is required")
		return
	}
	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "price must not be negative")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
	}

	if err := h.services.CreateService(c.Request.Context(), &svc); err != nil {
		h.log.WithError(err).Error("failed to create service")
		httperr.Internal(c, "failed_to_create_service", "could not create service")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.services.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "service not found")
			return
		}
		h.log.WithError(err).Error("failed to delete service")
		httperr.Internal(c, "failed_to_delete_service", "could not delete service")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}
