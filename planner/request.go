package planner

import (
	"net/http"
	"strings"
	"time"

	ai "github.com/wayfinder-ai/wayfinder"
)

// DateFormat is the wire format for trip dates.
const DateFormat = "2006-01-02"

// TripRequest describes the trip a user wants planned.
type TripRequest struct {
	// Origin is the departure city, e.g. "New York, NY".
	Origin string `json:"origin"`
	// Destination is the destination city, e.g. "Paris, France".
	Destination string `json:"destination"`
	// StartDate is the first day of the trip in YYYY-MM-DD format.
	StartDate string `json:"start_date"`
	// EndDate is the last day of the trip in YYYY-MM-DD format.
	EndDate string `json:"end_date"`
	// Budget is the total budget as free text, e.g. "$2000 USD".
	Budget string `json:"budget"`
	// Interests is a free-text list, e.g. "museums, food, hiking".
	Interests string `json:"interests"`
}

// Validate checks that all fields are present, the dates parse, and the
// end date falls after the start date. Errors are user-input errors
// suitable for returning to the browser.
func (r *TripRequest) Validate() error {
	missing := make([]string, 0, 6)
	for _, f := range []struct {
		name, value string
	}{
		{"origin", r.Origin},
		{"destination", r.Destination},
		{"start_date", r.StartDate},
		{"end_date", r.EndDate},
		{"budget", r.Budget},
		{"interests", r.Interests},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return ai.NewUserInputError("missing required fields: "+strings.Join(missing, ", "), http.StatusBadRequest, nil)
	}

	start, err := time.Parse(DateFormat, r.StartDate)
	if err != nil {
		return ai.NewUserInputError("start_date must be in YYYY-MM-DD format", http.StatusBadRequest, err)
	}
	end, err := time.Parse(DateFormat, r.EndDate)
	if err != nil {
		return ai.NewUserInputError("end_date must be in YYYY-MM-DD format", http.StatusBadRequest, err)
	}
	if !end.After(start) {
		return ai.NewUserInputError("end_date must be after start_date", http.StatusBadRequest, nil)
	}
	return nil
}

// Days returns the trip length in days, or 0 when the dates are invalid.
func (r *TripRequest) Days() int {
	start, err := time.Parse(DateFormat, r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateFormat, r.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
