package listing

import (
	"strings"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/models"
)

// FilterRepairs keeps repairs where the term appears, case-insensitively,
// in the owner name, "make model", free-text description, localized
// status label or any selected service name. An empty term passes
// everything through untouched.
func FilterRepairs(repairs []models.Repair, term string, locale i18n.Locale) []models.Repair {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return repairs
	}

	out := make([]models.Repair, 0, len(repairs))
	for _, r := range repairs {
		if repairContains(r, term, locale) {
			out = append(out, r)
		}
	}
	return out
}

func repairContains(r models.Repair, term string, locale i18n.Locale) bool {
	if strings.Contains(strings.ToLower(r.OwnerName), term) ||
		strings.Contains(strings.ToLower(r.Car()), term) ||
		strings.Contains(strings.ToLower(r.Repairs), term) {
		return true
	}
	status := i18n.StatusLabel(locale, repair.ParseStatus(r.Status))
	if strings.Contains(strings.ToLower(status), term) {
		return true
	}
	for _, s := range r.SelectedServices {
		if strings.Contains(strings.ToLower(s.Name), term) {
			return true
		}
	}
	return false
}

// FilterClients matches on owner name, make or model.
func FilterClients(clients []models.Client, term string) []models.Client {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clients
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.OwnerName), term) ||
			strings.Contains(strings.ToLower(c.Make), term) ||
			strings.Contains(strings.ToLower(c.Model), term) {
			out = append(out, c)
		}
	}
	return out
}

// DedupClients keeps the first occurrence of each owner name. Input must
// already be in descending creation order so the newest record wins; the
// store may hold true duplicates, so this runs on every read.
func DedupClients(clients []models.Client) []models.Client {
	seen := make(map[string]struct{}, len(clients))
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if _, ok := seen[c.OwnerName]; ok {
			continue
		}
		seen[c.OwnerName] = struct{}{}
		out = append(out, c)
	}
	return out
}
