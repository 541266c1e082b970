package handlers

import (
	"errors"
	"net/http"

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
	repairuc "github.com/ivcho02/mechanic-api/internal/usecase/repair"
)

type RepairHandler struct {
	repairs RepairStore
	audit   *audit.Dispatcher
	log     *logrus.Logger

	list      *repairuc.ListRepairs
	create    *repairuc.CreateRepair
	update    *repairuc.UpdateRepair
	advance   *repairuc.AdvanceStatus
	cancel    *repairuc.CancelRepair
	addSvc    *repairuc.AddService
	removeSvc *repairuc.RemoveService
	mine      *repairuc.MyRepairs
}

func NewRepairHandler(
	repairs RepairStore,
	dispatcher *audit.Dispatcher,
	log *logrus.Logger,
	list *repairuc.ListRepairs,
	create *repairuc.CreateRepair,
	update *repairuc.UpdateRepair,
	advance *repairuc.AdvanceStatus,
	cancel *repairuc.CancelRepair,
	addSvc *repairuc.AddService,
	removeSvc *repairuc.RemoveService,
	mine *repairuc.MyRepairs,
) *RepairHandler {
	return &RepairHandler{
		repairs:   repairs,
		audit:     dispatcher,
		log:       log,
		list:      list,
		create:    create,
		update:    update,
		advance:   advance,
		cancel:    cancel,
		addSvc:    addSvc,
		removeSvc: removeSvc,
		mine:      mine,
	}
}

func (h *RepairHandler) List(c *gin.Context) {
	field, order := listing.ParseSort(c.Query("sort"), c.Query("order"))

	repairs, err := h.list.Execute(c.Request.Context(), repairuc.ListParams{
		Search:    c.Query("search"),
		SortField: field,
		SortOrder: order,
		Locale:    i18n.Pick(c.Query("lang")),
	})
	if err != nil {
		h.log.WithError(err).Error("failed to list repairs")
		httperr.Internal(c, "failed_to_list_repairs", "could not list repairs")
		return
	}

	httpresp.List(c, repairs)
}

func (h *RepairHandler) Get(c *gin.Context) {
	r, err := h.repairs.GetRepair(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed_to_load_repair")
		return
	}
	httpresp.OK(c, r)
}

type CreateRepairRequest struct {
	ClientID         string                   `json:"clientId" binding:"required"`
	SelectedServices []models.SelectedService `json:"selectedServices"`
	Repairs          string                   `json:"repairs"`
	Cost             float64                  `json:"cost"`
	AdditionalInfo   string                   `json:"additionalInfo"`
	UserEmail        string                   `json:"userEmail"`
}

func (h *RepairHandler) Create(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	r, err := h.create.Execute(c.Request.Context(), actorID(c), repairuc.CreateInput{
		ClientID:         req.ClientID,
		SelectedServices: req.SelectedServices,
		Repairs:          req.Repairs,
		Cost:             req.Cost,
		AdditionalInfo:   req.AdditionalInfo,
		UserEmail:        req.UserEmail,
	})
	if err != nil {
		h.writeError(c, err, "failed_to_create_repair")
		return
	}

	httpresp.Created(c, r)
}

type UpdateRepairRequest struct {
	SelectedServices *[]models.SelectedService `json:"selectedServices"`
	Repairs          *string                   `json:"repairs"`
	Cost             *float64                  `json:"cost"`
	AdditionalInfo   *string                   `json:"additionalInfo"`
	Status           *string                   `json:"status"`
}

func (h *RepairHandler) Update(c *gin.Context) {
	var req UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	r, err := h.update.Execute(c.Request.Context(), actorID(c), c.Param("id"), repairuc.UpdateInput{
		SelectedServices: req.SelectedServices,
		Repairs:          req.Repairs,
		Cost:             req.Cost,
		AdditionalInfo:   req.AdditionalInfo,
		Status:           req.Status,
	})
	if err != nil {
		h.writeError(c, err, "failed_to_update_repair")
		return
	}

	httpresp.OK(c, r)
}

func (h *RepairHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repairs.DeleteRepair(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "failed_to_delete_repair")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "repair_deleted",
		Entity:   "repair",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

func (h *RepairHandler) AdvanceStatus(c *gin.Context) {
	r, err := h.advance.Execute(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed_to_advance_status")
		return
	}
	httpresp.OK(c, r)
}

func (h *RepairHandler) Cancel(c *gin.Context) {
	r, err := h.cancel.Execute(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed_to_cancel_repair")
		return
	}
	httpresp.OK(c, r)
}

type AddServiceRequest struct {
	ServiceID string `json:"serviceId"`

	// Ad-hoc service fields, used when serviceId is empty.
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (h *RepairHandler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := repairuc.AddServiceInput{ServiceID: req.ServiceID}
	if req.ServiceID == "" && req.Name != "" {
		in.Custom = &repairuc.CustomService{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
		}
	}

	r, err := h.addSvc.Execute(c.Request.Context(), actorID(c), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err, "failed_to_add_service")
		return
	}

	httpresp.OK(c, r)
}

func (h *RepairHandler) RemoveService(c *gin.Context) {
	r, err := h.removeSvc.Execute(
		c.Request.Context(),
		actorID(c),
		c.Param("id"),
		c.Param("serviceId"),
	)
	if err != nil {
		h.writeError(c, err, "failed_to_remove_service")
		return
	}

	httpresp.OK(c, r)
}

// MyRepairs is the customer-facing view: the caller's repairs resolved by
// clientId where present and by the layered matcher for historical
// records. The heuristic flag tells the client to present fallback
// matches as tentative.
func (h *RepairHandler) MyRepairs(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	result, err := h.mine.Execute(c.Request.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("failed to resolve customer repairs")
		httperr.Internal(c, "failed_to_load_repairs", "could not load your repairs")
		return
	}

	httpresp.OK(c, gin.H{
		"client":          result.Client,
		"matches":         result.Matches,
		"heuristic":       result.Heuristic,
		"recentUnmatched": result.RecentUnmatched,
	})
}

// writeError maps domain and business errors onto HTTP statuses; anything
// unrecognized becomes a logged 500 with the given code.
func (h *RepairHandler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "not_found", "record not found")
		return
	}
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "client_not_found", "service_not_found", "service_not_attached":
			httperr.NotFound(c, code, code)
		default:
			httperr.BadRequest(c, code, code)
		}
		return
	}

	h.log.WithError(err).Error("repair operation failed")
	httperr.Internal(c, fallback, "operation failed")
}
