package quote

import (
	"fmt"

	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/models"
)

// Document is the structured description handed to the PDF renderer.
// Section order and presence rules are locale-independent; only labels,
// currency markers and the file name vary.
type Document struct {
	Title    string
	Subtitle string
	Meta     []string
	Sections []Section
	Closing  []string
	FileName string
}

type Section struct {
	Header string
	Lines  []string
	// Items is set instead of Lines for the service table.
	Items       []LineItem
	ItemsHeader [2]string
}

type LineItem struct {
	Name  string
	Price string
}

// BuildDocument assembles the quote for a repair:
// header, date/number, client info, services (structured table when
// present, legacy free text otherwise), financial summary, optional
// additional info, fixed terms, signature.
func BuildDocument(r models.Repair, locale i18n.Locale) Document {
	qs := i18n.Quote(locale)

	doc := Document{
		Title:    qs.Title,
		Subtitle: qs.Subtitle,
		Meta: []string{
			fmt.Sprintf("%s: %s", qs.Date, i18n.FormatDate(locale, r.CreatedAt.Seconds)),
			fmt.Sprintf("%s: %s", qs.QuoteNumber, r.ID),
		},
		FileName: i18n.QuoteFileName(locale, r.ID),
	}

	client := Section{
		Header: qs.ClientInfo,
		Lines:  []string{fmt.Sprintf("%s: %s", qs.Name, r.OwnerName)},
	}
	if r.Phone != "" {
		client.Lines = append(client.Lines, fmt.Sprintf("%s: %s", qs.Phone, r.Phone))
	}
	client.Lines = append(client.Lines,
		fmt.Sprintf("%s: %s", qs.Vehicle, r.Car()),
		fmt.Sprintf("%s: %s", qs.EngineSize, r.EngineSize),
	)
	doc.Sections = append(doc.Sections, client)

	if len(r.SelectedServices) > 0 {
		services := Section{
			Header:      qs.Service,
			ItemsHeader: [2]string{qs.Service, qs.Price},
		}
		for _, s := range r.SelectedServices {
			services.Items = append(services.Items, LineItem{
				Name:  s.Name,
				Price: i18n.FormatMoney(locale, s.Price),
			})
		}
		doc.Sections = append(doc.Sections, services)
	} else {
		doc.Sections = append(doc.Sections, Section{
			Header: qs.LegacyServices,
			Lines:  []string{r.Repairs},
		})
	}

	doc.Sections = append(doc.Sections, Section{
		Header: qs.Financial,
		Lines: []string{
			fmt.Sprintf("%s: %s", qs.TotalAmount, i18n.FormatMoney(locale, r.Cost)),
			fmt.Sprintf("%s: %s", qs.VAT, i18n.FormatMoney(locale, VAT(r.Cost))),
			fmt.Sprintf("%s: %s", qs.FinalAmount, i18n.FormatMoney(locale, Total(r.Cost))),
		},
	})

	// An empty additional-info block is omitted entirely, not rendered blank.
	if r.AdditionalInfo != "" {
		doc.Sections = append(doc.Sections, Section{
			Header: qs.AdditionalInfo,
			Lines:  []string{r.AdditionalInfo},
		})
	}

	doc.Sections = append(doc.Sections, Section{
		Header: qs.Terms,
		Lines:  []string{qs.TermsText[0], qs.TermsText[1]},
	})

	doc.Closing = []string{qs.Regards, qs.TeamByline}
	return doc
}
