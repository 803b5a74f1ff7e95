package occurrencedb

import(
	"time"
)

// OccurrenceForBigQuery is a slightly denormalized representation of a
// cleaned occurrence, designed for import into BigQuery for longer-term
// analysis than the dashboard itself offers.
type OccurrenceForBigQuery struct {
	OdbId           int64  // ID back into the occurrence database

	Classification  string
	Date            time.Time
	Year            int
	State           string
	City            string

	// Only defined if the occurrence had a plausible position
	HasPos          bool
	Lat,Long        float64
}

func (o Occurrence)ForBigQuery() *OccurrenceForBigQuery {
	obq := OccurrenceForBigQuery{
		OdbId: o.ID,
		Classification: o.Classification.String(),
		Date: o.Date,
		Year: o.Year,
		State: o.State,
		City: o.City,
	}

	if o.Pos != nil {
		obq.HasPos = true
		obq.Lat = o.Pos.Lat
		obq.Long = o.Pos.Long
	}

	return &obq
}
