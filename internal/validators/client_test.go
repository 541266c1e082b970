package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/models"
)

func TestMissingClientFields_Complete(t *testing.T) {
	c := &models.Client{
		OwnerName:  "Иван Петров",
		Phone:      "0888123456",
		Make:       "VW",
		Model:      "Golf",
		EngineSize: "1.9",
	}
	assert.Empty(t, MissingClientFields(c))
}

func TestMissingClientFields_ReportsEach(t *testing.T) {
	c := &models.Client{
		OwnerName: "  ",
		Make:      "VW",
	}

	missing := MissingClientFields(c)

	assert.ElementsMatch(t, []string{"ownerName", "phone", "model", "engineSize"}, missing)
}

func TestMissingClientFields_VinAndEmailOptional(t *testing.T) {
	c := &models.Client{
		OwnerName:  "Иван Петров",
		Phone:      "0888123456",
		Make:       "VW",
		Model:      "Golf",
		EngineSize: "1.9",
		Vin:        "",
		Email:      "",
	}
	assert.Empty(t, MissingClientFields(c))
}
