package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/httpresp"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/listing"
	"github.com/ivcho02/mechanic-api/internal/middleware"
	"github.com/ivcho02/mechanic-api/internal/models"
	"github.com/ivcho02/mechanic-api/internal/validators"
)

type ClientHandler struct {
	clients ClientStore
	audit   *audit.Dispatcher
	log     *logrus.Logger
}

func NewClientHandler(clients ClientStore, dispatcher *audit.Dispatcher, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, audit: dispatcher, log: log}
}

// List returns the client roster deduplicated by owner name, filtered by
// ?search and ordered by ?sort/?order.
func (h *ClientHandler) List(c *gin.Context) {
	locale := i18n.Pick(c.Query("lang"))
	field, order := listing.ParseSort(c.Query("sort"), c.Query("order"))

	clients, err := h.clients.ListClients(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list clients")
		httperr.Internal(c, "failed_to_list_clients", "could not list clients")
		return
	}

	clients = listing.DedupClients(clients)
	clients = listing.FilterClients(clients, c.Query("search"))
	clients = listing.SortClients(clients, field, order, locale)

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clients.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "client not found")
			return
		}
		h.log.WithError(err).Error("failed to load client")
		httperr.Internal(c, "failed_to_load_client", "could not load client")
		return
	}

	httpresp.OK(c, client)
}

type ClientRequest struct {
	OwnerName  string `json:"ownerName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	EngineSize string `json:"engineSize"`
	Vin        string `json:"vin"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client := models.Client{
		OwnerName:  strings.TrimSpace(req.OwnerName),
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Make:       strings.TrimSpace(req.Make),
		Model:      strings.TrimSpace(req.Model),
		EngineSize: strings.TrimSpace(req.EngineSize),
		Vin:        strings.TrimSpace(req.Vin),
	}

	if missing := validators.MissingClientFields(&client); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_required_fields",
			"details": missing,
		})
		return
	}
	if client.Email != "" && !validators.IsEmailDomainValid(client.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "email domain does not resolve")
		return
	}

	if err := h.clients.CreateClient(c.Request.Context(), &client); err != nil {
		h.log.WithError(err).Error("failed to create client")
		httperr.Internal(c, "failed_to_create_client", "could not create client")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "client_created",
		Entity:   "client",
		EntityID: client.ID,
	})

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.clients.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "client not found")
			return
		}
		h.log.WithError(err).Error("failed to load client")
		httperr.Internal(c, "failed_to_load_client", "could not load client")
		return
	}

	client.OwnerName = strings.TrimSpace(req.OwnerName)
	client.Phone = strings.TrimSpace(req.Phone)
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Make = strings.TrimSpace(req.Make)
	client.Model = strings.TrimSpace(req.Model)
	client.EngineSize = strings.TrimSpace(req.EngineSize)
	client.Vin = strings.TrimSpace(req.Vin)

	if missing := validators.MissingClientFields(client); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_required_fields",
			"details": missing,
		})
		return
	}

	if err := h.clients.UpdateClient(c.Request.Context(), client); err != nil {
		h.log.WithError(err).Error("failed to update client")
		httperr.Internal(c, "failed_to_update_client", "could not update client")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "client_updated",
		Entity:   "client",
		EntityID: client.ID,
	})

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.clients.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "client not found")
			return
		}
		h.log.WithError(err).Error("failed to delete client")
		httperr.Internal(c, "failed_to_delete_client", "could not delete client")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// actorID pulls the authenticated account id for audit attribution.
func actorID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
