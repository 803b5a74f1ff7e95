package analysis

import(
	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

func init() {
	report.HandleReport("factorareas", FactorAreasReporter,
		"Contributing-factor counts per area (human, material, operational)")
	report.HandleReport("factornames", FactorNamesReporter,
		"Contributing-factor counts per name, within one area ({area=...})")
}

// {{{ FactorAreasReporter

func FactorAreasReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,f := range ds.Factors {
		o,exists := ds.OccurrenceByID(f.OccurrenceRef)
		if !exists {
			r.I["[C] factor rows w/ unmatched ref"]++
			continue
		}
		if !r.Options.WithinDateRange(o.Date) { continue }
		counts[f.Area]++
	}

	r.AddCountRows("area", counts, r.Options.TopNOrDefault(0))
	return nil
}

// }}}
// {{{ FactorNamesReporter

// Zooms into one factor area (the human factor by default) and ranks the
// individual factor names within it.
func FactorNamesReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,f := range ds.Factors {
		if f.Area != r.Options.FactorArea { continue }

		o,exists := ds.OccurrenceByID(f.OccurrenceRef)
		if !exists {
			r.I["[C] factor rows w/ unmatched ref"]++
			continue
		}
		if !r.Options.WithinDateRange(o.Date) { continue }
		if f.Name == "" { continue }
		counts[f.Name]++
	}

	r.S["[D] factor area"] = r.Options.FactorArea
	r.AddCountRows("factor", counts, r.Options.TopNOrDefault(10))
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
