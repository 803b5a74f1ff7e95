package analysis

import(
	"strconv"

	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

func fmtCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func init() {
	report.HandleReport("states", StatesReporter,
		"Accident counts per Brazilian state (UF)")
	report.HandleReport("mappoints", MapPointsReporter,
		"One row per accident with a cleaned position; raw material for map layers")
}

// {{{ StatesReporter

func StatesReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,o := range ds.Occurrences {
		if o.Classification != odb.Accident { continue }
		if !r.Options.WithinDateRange(o.Date) { continue }
		if o.State == "" { continue }
		counts[o.State]++
	}

	r.AddCountRows("state", counts, r.Options.TopNOrDefault(15))
	return nil
}

// }}}
// {{{ MapPointsReporter

// Only occurrences that survived coordinate cleaning have a position, so
// a loader run without RequireCoordinates yields an empty view here.
func MapPointsReporter(r *report.Report, ds *odb.Dataset) error {
	r.SetHeaders([]string{"lat", "long", "city", "state", "date"})

	for _,o := range ds.Occurrences {
		if o.Classification != odb.Accident { continue }
		if !o.HasPos() {
			r.I["[C] accidents w/o position"]++
			continue
		}
		if !r.Options.WithinDateRange(o.Date) { continue }

		row := []string{
			fmtCoord(o.Pos.Lat),
			fmtCoord(o.Pos.Long),
			o.City,
			o.State,
			o.Date.Format("2006-01-02"),
		}
		r.AddRow(&row, &row)
	}

	r.I["[C] points emitted"] = len(r.RowsText)
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
