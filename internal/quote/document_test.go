package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func sampleRepair() models.Repair {
	return models.Repair{
		ID:         "abc123",
		OwnerName:  "Иван Петров",
		Phone:      "0888123456",
		Make:       "VW",
		Model:      "Golf",
		EngineSize: "1.9",
		Cost:       45,
		SelectedServices: []models.SelectedService{
			{ID: "s1", Name: "Смяна на масло", Price: 45},
		},
		CreatedAt: models.Timestamp{Seconds: 1710950400}, // 20.03.2024
	}
}

func sectionHeaders(doc Document) []string {
	out := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.Header)
	}
	return out
}

func TestBuildDocument_SectionOrderBG(t *testing.T) {
	doc := BuildDocument(sampleRepair(), i18n.LocaleBG)

	assert.Equal(t, "Автосервиз", doc.Title)
	assert.Equal(t, "Оферта за ремонт", doc.Subtitle)
	assert.Equal(t, "оферта_ремонт_abc123.pdf", doc.FileName)

	assert.Equal(t, []string{
		"Информация за клиента",
		"Услуга",
		"Финансова информация",
		"Общи условия",
	}, sectionHeaders(doc))

	assert.Contains(t, doc.Meta[0], "20.03.2024 г.")
	assert.Contains(t, doc.Meta[1], "abc123")
}

func TestBuildDocument_FinancialFigures(t *testing.T) {
	doc := BuildDocument(sampleRepair(), i18n.LocaleBG)

	fin := doc.Sections[2]
	assert.Equal(t, "Обща сума: 45.00 лв.", fin.Lines[0])
	assert.Equal(t, "ДДС: 9.00 лв.", fin.Lines[1])
	assert.Equal(t, "Крайна сума: 54.00 лв.", fin.Lines[2])
}

func TestBuildDocument_EnglishLocale(t *testing.T) {
	doc := BuildDocument(sampleRepair(), i18n.LocaleEN)

	assert.Equal(t, "Repair Quote", doc.Subtitle)
	assert.Equal(t, "repair_quote_abc123.pdf", doc.FileName)
	assert.Contains(t, doc.Meta[0], "3/20/2024")

	fin := doc.Sections[2]
	assert.Equal(t, "Total Amount: 45.00 BGN", fin.Lines[0])
}

func TestBuildDocument_PhoneOmittedWhenEmpty(t *testing.T) {
	r := sampleRepair()
	r.Phone = ""

	doc := BuildDocument(r, i18n.LocaleBG)

	client := doc.Sections[0]
	assert.Len(t, client.Lines, 3)
	for _, line := range client.Lines {
		assert.NotContains(t, line, "Телефон")
	}
}

func TestBuildDocument_LegacyFreeTextServices(t *testing.T) {
	r := sampleRepair()
	r.SelectedServices = nil
	r.Repairs = "смяна на масло\nфилтри"

	doc := BuildDocument(r, i18n.LocaleBG)

	services := doc.Sections[1]
	assert.Equal(t, "Предложени ремонтни дейности", services.Header)
	assert.Empty(t, services.Items)
	assert.Equal(t, []string{"смяна на масло\nфилтри"}, services.Lines)
}

func TestBuildDocument_AdditionalInfoSection(t *testing.T) {
	r := sampleRepair()
	r.AdditionalInfo = "Частите се доставят до 3 дни."

	doc := BuildDocument(r, i18n.LocaleBG)

	headers := sectionHeaders(doc)
	assert.Contains(t, headers, "Допълнителна информация")

	// Additional info sits between the financial block and the terms.
	assert.Equal(t, "Финансова информация", headers[2])
	assert.Equal(t, "Допълнителна информация", headers[3])
	assert.Equal(t, "Общи условия", headers[4])
}

func TestBuildDocument_ServiceTable(t *testing.T) {
	r := sampleRepair()
	r.SelectedServices = append(r.SelectedServices,
		models.SelectedService{ID: "s2", Name: "Накладки", Price: 120})

	doc := BuildDocument(r, i18n.LocaleBG)

	services := doc.Sections[1]
	assert.Equal(t, [2]string{"Услуга", "Цена"}, services.ItemsHeader)
	assert.Len(t, services.Items, 2)
	assert.Equal(t, "120.00 лв.", services.Items[1].Price)
}
