package occurrencedb

import(
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// Occurrence is the root entity; the satellite tables reference it by ID.
type Occurrence struct {
	ID              int64
	Classification  Classification
	Date            time.Time  // always valid; rows with unparseable dates are dropped at load
	Year            int        // calendar year of Date
	State           string     // two-letter UF code; may be empty unless coordinates were required
	City            string

	// Cleaned position, nil when the raw strings didn't yield a plausible
	// coordinate (or the loader wasn't asked for coordinates).
	Pos            *geo.Latlong

	// The free-text position fields, as found in the file.
	RawLatitude     string
	RawLongitude    string
}

func (o Occurrence)String() string {
	return fmt.Sprintf("%d %s %s/%s %s", o.ID, o.Date.Format("2006.01.02"), o.City, o.State,
		o.Classification)
}

func (o Occurrence)HasPos() bool { return o.Pos != nil }
