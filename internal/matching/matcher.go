// Package matching associates a customer identity with the repair records
// that belong to them. The historical data has no foreign key between
// clients and repairs, so association is inferred from denormalized
// fields; records created by this API carry an explicit clientId and are
// matched exactly.
package matching

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/ivcho02/mechanic-api/internal/models"
)

// Identity is what we know about the logged-in customer: the
// authenticated email plus the linked client profile.
type Identity struct {
	ClientID string
	Email    string
	Name     string
	Phone    string
	Make     string
	Model    string
}

const (
	ConfidenceExact     = "exact"
	ConfidenceHeuristic = "heuristic"
)

// Rule names, recorded per match for reconciliation views.
const (
	RuleClientID = "client_id"
	RuleEmail    = "email"
	RuleName     = "name"
	RulePhone    = "phone"
	RuleVehicle  = "vehicle"
	RuleFallback = "substring"
)

type Match struct {
	Repair     models.Repair `json:"repair"`
	Rule       string        `json:"rule"`
	Confidence string        `json:"confidence"`
}

// Result is the matcher output. Heuristic is set when the fallback
// substring pass produced the matches; callers must surface that as a
// degraded-confidence result, never as an authoritative answer.
type Result struct {
	Matches   []Match
	Heuristic bool
}

// Repairs returns just the matched records, newest first.
func (r Result) Repairs() []models.Repair {
	out := make([]models.Repair, 0, len(r.Matches))
	for _, m := range r.Matches {
		out = append(out, m.Repair)
	}
	return out
}

// serialize is the fallback's view of a repair: the whole document as a
// lowercased string. Swappable in tests.
var serialize = func(r models.Repair) string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(b))
}

// MatchRepairs runs the layered matching strategy over the full repair
// set. The primary pass is the union of the exact rules, deduplicated by
// repair id; the loose substring pass runs only when the primary union is
// empty. Output is sorted newest-first with ties keeping storage order.
func MatchRepairs(id Identity, repairs []models.Repair) Result {
	matches := primaryPass(id, repairs)
	if len(matches) > 0 {
		return Result{Matches: sortNewestFirst(matches)}
	}

	matches = fallbackPass(id, repairs)
	if len(matches) == 0 {
		return Result{}
	}
	return Result{Matches: sortNewestFirst(matches), Heuristic: true}
}

func primaryPass(id Identity, repairs []models.Repair) []Match {
	var matches []Match
	for _, r := range repairs {
		rule, ok := matchRule(id, r)
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Repair:     r,
			Rule:       rule,
			Confidence: ConfidenceExact,
		})
	}
	return dedupe(matches)
}

// matchRule applies the exact rules in order and reports the first one
// that holds. A repair can match via any rule; the rule name is only for
// display.
func matchRule(id Identity, r models.Repair) (string, bool) {
	switch {
	case id.ClientID != "" && r.ClientID == id.ClientID:
		return RuleClientID, true
	case id.Email != "" && r.OwnerEmail == id.Email:
		return RuleEmail, true
	case id.Name != "" && r.OwnerName == id.Name:
		return RuleName, true
	case id.Phone != "" && r.Phone != "" && r.Phone == id.Phone:
		return RulePhone, true
	case vehicleMatches(id, r):
		return RuleVehicle, true
	}
	return "", false
}

func vehicleMatches(id Identity, r models.Repair) bool {
	if id.Make == "" || id.Model == "" || r.Make == "" || r.Model == "" {
		return false
	}
	return strings.EqualFold(r.Make, id.Make) && strings.EqualFold(r.Model, id.Model)
}

// fallbackPass is intentionally loose: any repair whose serialized form
// contains the customer's email, name or phone as a substring counts.
// It exists to surface likely-orphaned records for manual reconciliation
// and is false-positive-prone by design of the source system.
func fallbackPass(id Identity, repairs []models.Repair) []Match {
	email := strings.ToLower(id.Email)
	name := strings.ToLower(id.Name)
	phone := strings.ToLower(id.Phone)

	var matches []Match
	for _, r := range repairs {
		doc := serialize(r)
		if doc == "" {
			continue
		}
		if (email != "" && strings.Contains(doc, email)) ||
			(name != "" && strings.Contains(doc, name)) ||
			(phone != "" && strings.Contains(doc, phone)) {
			matches = append(matches, Match{
				Repair:     r,
				Rule:       RuleFallback,
				Confidence: ConfidenceHeuristic,
			})
		}
	}
	return dedupe(matches)
}

// RecentRepairs returns the n most recent repairs system-wide, used as a
// diagnostic aid when nothing matched at all. Callers must present it
// with a disclaimer, never as "your repairs".
func RecentRepairs(repairs []models.Repair, n int) []models.Repair {
	sorted := make([]models.Repair, len(repairs))
	copy(sorted, repairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Seconds > sorted[j].CreatedAt.Seconds
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func dedupe(matches []Match) []Match {
	seen := make(map[string]struct{}, len(matches))
	out := matches[:0]
	for _, m := range matches {
		if _, ok := seen[m.Repair.ID]; ok {
			continue
		}
		seen[m.Repair.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func sortNewestFirst(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Repair.CreatedAt.Seconds > matches[j].Repair.CreatedAt.Seconds
	})
	return matches
}
