package repair

import (
	"strings"
	"time"

	"github.com/ivcho02/mechanic-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Advance moves the repair one step along the workflow and stamps the
// update time. Advancing a terminal repair leaves it unchanged.
func Advance(r *models.Repair, now time.Time) Status {
	next := NextStatus(ParseStatus(r.Status))
	r.Status = string(next)
	touch(r, now)
	return next
}

// Cancel sets the status to cancelled regardless of the current state.
// The source system allowed cancelling completed repairs and re-cancelling
// cancelled ones; that permissive rule is kept on purpose.
func Cancel(r *models.Repair, now time.Time) {
	r.Status = string(StatusCancelled)
	touch(r, now)
}

// ApplyClient copies the client's identity and vehicle fields onto the
// repair verbatim. This is a snapshot: later client edits do not reach
// existing repairs.
func ApplyClient(r *models.Repair, c *models.Client) {
	r.ClientID = c.ID
	r.OwnerName = c.OwnerName
	r.Phone = c.Phone
	r.Make = c.Make
	r.Model = c.Model
	r.EngineSize = c.EngineSize
	r.Vin = c.Vin
	r.OwnerEmail = c.Email
}

// AddService appends a service snapshot unless one with the same id is
// already attached, then recomputes the derived fields.
func AddService(r *models.Repair, svc models.SelectedService) bool {
	for _, s := range r.SelectedServices {
		if s.ID == svc.ID {
			return false
		}
	}
	r.SelectedServices = append(r.SelectedServices, svc)
	SyncServices(r)
	return true
}

// RemoveService drops the snapshot with the given id and recomputes the
// derived fields.
func RemoveService(r *models.Repair, serviceID string) bool {
	kept := r.SelectedServices[:0]
	removed := false
	for _, s := range r.SelectedServices {
		if s.ID == serviceID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	r.SelectedServices = kept
	if removed {
		SyncServices(r)
	}
	return removed
}

// SyncServices keeps cost and the legacy free-text field consistent with
// the structured service list: cost is the sum of the snapshot prices and
// repairs is the newline-joined service names. Repairs without structured
// services keep their manual cost and text untouched.
func SyncServices(r *models.Repair) {
	if len(r.SelectedServices) == 0 {
		return
	}
	total := 0.0
	names := make([]string, 0, len(r.SelectedServices))
	for _, s := range r.SelectedServices {
		total += s.Price
		names = append(names, s.Name)
	}
	r.Cost = total
	r.Repairs = strings.Join(names, "\n")
}

func touch(r *models.Repair, now time.Time) {
	ts := models.NewTimestamp(now)
	r.UpdatedAt = &ts
}
