// Package listing implements the comparator-based sorting and substring
// filtering shared by every list view.
package listing

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type SortField string

const (
	SortByDate   SortField = "date"
	SortByName   SortField = "name"
	SortByCar    SortField = "car"
	SortByStatus SortField = "status"
	SortByCost   SortField = "cost"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSort validates raw query parameters, falling back to the list
// default of newest first.
func ParseSort(field, order string) (SortField, SortOrder) {
	f := SortField(field)
	switch f {
	case SortByDate, SortByName, SortByCar, SortByStatus, SortByCost:
	default:
		f = SortByDate
		order = string(Desc)
	}
	if SortOrder(order) == Desc {
		return f, Desc
	}
	return f, Asc
}

// ToggleSort reproduces the header-click behavior: selecting the current
// field flips the order, selecting a new field resets to ascending.
func ToggleSort(current SortField, order SortOrder, requested SortField) (SortField, SortOrder) {
	if requested == current {
		if order == Asc {
			return current, Desc
		}
		return current, Asc
	}
	return requested, Asc
}

// SortRepairs orders a copy of the slice by the given field. String
// fields compare locale-aware; equal elements keep their relative order.
func SortRepairs(repairs []models.Repair, field SortField, order SortOrder, locale i18n.Locale) []models.Repair {
	coll := collate.New(locale.Tag())
	out := make([]models.Repair, len(repairs))
	copy(out, repairs)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var cmp int
		switch field {
		case SortByDate:
			cmp = compareInt64(a.CreatedAt.Seconds, b.CreatedAt.Seconds)
		case SortByName:
			cmp = coll.CompareString(a.OwnerName, b.OwnerName)
		case SortByCar:
			cmp = coll.CompareString(a.Car(), b.Car())
		case SortByStatus:
			cmp = coll.CompareString(
				i18n.StatusLabel(locale, repair.ParseStatus(a.Status)),
				i18n.StatusLabel(locale, repair.ParseStatus(b.Status)),
			)
		case SortByCost:
			cmp = compareFloat(a.Cost, b.Cost)
		}
		if order == Desc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// SortClients orders clients by date, name or car; other fields do not
// apply to the client list and leave the order unchanged.
func SortClients(clients []models.Client, field SortField, order SortOrder, locale i18n.Locale) []models.Client {
	coll := collate.New(locale.Tag())
	out := make([]models.Client, len(clients))
	copy(out, clients)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var cmp int
		switch field {
		case SortByDate:
			cmp = compareInt64(clientSeconds(a), clientSeconds(b))
		case SortByName:
			cmp = coll.CompareString(a.OwnerName, b.OwnerName)
		case SortByCar:
			cmp = coll.CompareString(a.Make+" "+a.Model, b.Make+" "+b.Model)
		default:
			return false
		}
		if order == Desc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

func clientSeconds(c models.Client) int64 {
	if c.CreatedAt == nil {
		return 0
	}
	return c.CreatedAt.Seconds
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
