package validators

import (
	"strings"

	"github.com/ivcho02/mechanic-api/internal/models"
)

// MissingClientFields lists the required client fields that are empty.
// The forms enforced ownerName, phone, make, model and engineSize; vin
// and email stay optional.
func MissingClientFields(c *models.Client) []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("ownerName", c.OwnerName)
	check("phone", c.Phone)
	check("make", c.Make)
	check("model", c.Model)
	check("engineSize", c.EngineSize)
	return missing
}
