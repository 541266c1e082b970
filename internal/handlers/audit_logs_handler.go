package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/httpresp"
	"github.com/ivcho02/mechanic-api/internal/models"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *logrus.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

// List returns the newest audit entries, optionally filtered by ?entity
// and ?action. Admin only.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	q := h.db.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		h.log.WithError(err).Error("failed to list audit logs")
		httperr.Internal(c, "failed_to_list_audit_logs", "could not list audit logs")
		return
	}

	httpresp.List(c, logs)
}
