// Package i18n holds the labels the API itself emits: status names,
// quote section headings, dates, currency and file names. The front end
// keeps its own dictionaries; only backend-rendered output lives here.
package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
)

type Locale string

const (
	LocaleBG Locale = "bg"
	LocaleEN Locale = "en"
)

// Pick normalizes a raw lang parameter. Bulgarian is the shop's default.
func Pick(lang string) Locale {
	if Locale(lang) == LocaleEN {
		return LocaleEN
	}
	return LocaleBG
}

// Tag is the collation language for locale-aware string comparison.
func (l Locale) Tag() language.Tag {
	if l == LocaleEN {
		return language.English
	}
	return language.Bulgarian
}

var statusLabels = map[Locale]map[repair.Status]string{
	LocaleBG: {
		repair.StatusPending:    "Изпратена оферта",
		repair.StatusInProgress: "В процес",
		repair.StatusCompleted:  "Завършен",
		repair.StatusCancelled:  "Отказан",
	},
	LocaleEN: {
		repair.StatusPending:    "Quote sent",
		repair.StatusInProgress: "In progress",
		repair.StatusCompleted:  "Completed",
		repair.StatusCancelled:  "Cancelled",
	},
}

func StatusLabel(l Locale, s repair.Status) string {
	if label, ok := statusLabels[l][s]; ok {
		return label
	}
	return string(s)
}

// QuoteStrings is the full label set of a printed quote.
type QuoteStrings struct {
	Title    string
	Subtitle string

	Date        string
	QuoteNumber string

	ClientInfo string
	Name       string
	Phone      string
	Vehicle    string
	EngineSize string

	Service        string
	Price          string
	LegacyServices string

	Financial   string
	TotalAmount string
	VAT         string
	FinalAmount string

	AdditionalInfo string

	Terms      string
	TermsText  [2]string
	Regards    string
	TeamByline string
}

var quoteStrings = map[Locale]QuoteStrings{
	LocaleBG: {
		Title:          "Автосервиз",
		Subtitle:       "Оферта за ремонт",
		Date:           "Дата",
		QuoteNumber:    "Номер на оферта",
		ClientInfo:     "Информация за клиента",
		Name:           "Име",
		Phone:          "Телефон",
		Vehicle:        "Автомобил",
		EngineSize:     "Обем на двигателя",
		Service:        "Услуга",
		Price:          "Цена",
		LegacyServices: "Предложени ремонтни дейности",
		Financial:      "Финансова информация",
		TotalAmount:    "Обща сума",
		VAT:            "ДДС",
		FinalAmount:    "Крайна сума",
		AdditionalInfo: "Допълнителна информация",
		Terms:          "Общи условия",
		TermsText: [2]string{
			"1. Срокът за ремонт е приблизителен и може да се промени в зависимост от наличността на части.",
			"2. Офертата е валидна 7 дни от датата на издаване.",
		},
		Regards:    "С уважение,",
		TeamByline: "Екипът на Автосервиз",
	},
	LocaleEN: {
		Title:          "Auto Service",
		Subtitle:       "Repair Quote",
		Date:           "Date",
		QuoteNumber:    "Quote Number",
		ClientInfo:     "Client Information",
		Name:           "Name",
		Phone:          "Phone",
		Vehicle:        "Vehicle",
		EngineSize:     "Engine Size",
		Service:        "Service",
		Price:          "Price",
		LegacyServices: "Proposed Repair Services",
		Financial:      "Financial Information",
		TotalAmount:    "Total Amount",
		VAT:            "VAT",
		FinalAmount:    "Final Amount",
		AdditionalInfo: "Additional Information",
		Terms:          "Terms and Conditions",
		TermsText: [2]string{
			"1. The repair timeframe is approximate and may change depending on parts availability.",
			"2. The quote is valid for 7 days from the date of issue.",
		},
		Regards:    "Best regards,",
		TeamByline: "The Auto Service Team",
	},
}

func Quote(l Locale) QuoteStrings {
	if qs, ok := quoteStrings[l]; ok {
		return qs
	}
	return quoteStrings[LocaleBG]
}

// FormatDate renders a date the way the locale's UI did
// (bg-BG: 2.01.2006 г., en-US: 1/2/2006).
func FormatDate(l Locale, seconds int64) string {
	t := time.Unix(seconds, 0).UTC()
	if l == LocaleEN {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	return fmt.Sprintf("%d.%02d.%d г.", t.Day(), int(t.Month()), t.Year())
}

// FormatMoney renders an amount with the locale's currency marker.
// Both locales bill in BGN; only the marker changes.
func FormatMoney(l Locale, amount float64) string {
	if l == LocaleEN {
		return fmt.Sprintf("%.2f BGN", amount)
	}
	return fmt.Sprintf("%.2f лв.", amount)
}

// QuoteFileName is the download name for a generated quote.
func QuoteFileName(l Locale, repairID string) string {
	if l == LocaleEN {
		return fmt.Sprintf("repair_quote_%s.pdf", repairID)
	}
	return fmt.Sprintf("оферта_ремонт_%s.pdf", repairID)
}
