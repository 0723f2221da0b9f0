package court

import "time"

type Court struct {
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultNames is the San Francisco court list served when the database has
// none.
var DefaultNames = []string{
	"Alice Marble",
	"Balboa",
	"Buena Vista",
	"Dolores",
	"Hamilton",
	"J.P. Murphy",
	"Moscone",
	"Mountain Lake",
	"Parkside Square",
	"St. Mary's",
	"Upper Noe",
}
