package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/middleware"
)

// ProfileHandler serves the caller's own client record, looked up by the
// authenticated email. Customers use it to complete the stub created at
// registration.
type ProfileHandler struct {
	clients ClientStore
	log     *logrus.Logger
}

func NewProfileHandler(clients ClientStore, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{clients: clients, log: log}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	client, err := h.clients.FindClientByEmail(c.Request.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("failed to load profile")
		httperr.Internal(c, "failed_to_load_profile", "could not load profile")
		return
	}
	if client == nil {
		httperr.NotFound(c, "profile_not_found", "no client profile for this account")
		return
	}

	c.JSON(http.StatusOK, client)
}

type UpdateProfileRequest struct {
	OwnerName  string `json:"ownerName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Make       string `json:"make" binding:"required"`
	Model      string `json:"model" binding:"required"`
	EngineSize string `json:"engineSize" binding:"required"`
	Vin        string `json:"vin"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.clients.FindClientByEmail(c.Request.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("failed to load profile")
		httperr.Internal(c, "failed_to_load_profile", "could not load profile")
		return
	}
	if client == nil {
		httperr.NotFound(c, "profile_not_found", "no client profile for this account")
		return
	}

	client.OwnerName = req.OwnerName
	client.Phone = req.Phone
	client.Make = req.Make
	client.Model = req.Model
	client.EngineSize = req.EngineSize
	client.Vin = req.Vin

	if err := h.clients.UpdateClient(c.Request.Context(), client); err != nil {
		h.log.WithError(err).Error("failed to update profile")
		httperr.Internal(c, "failed_to_update_profile", "could not update profile")
		return
	}

	c.JSON(http.StatusOK, client)
}
