package analysis

import(
	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

func init() {
	report.HandleReport("segments", SegmentsReporter,
		"Accident counts per aviation segment (regular, private, agricultural, ...)")
	report.HandleReport("phases", PhasesReporter,
		"Accident counts per phase of operation (landing, takeoff, cruise, ...)")
	report.HandleReport("types", TypesReporter,
		"Accident counts per occurrence type (loss of control, engine failure, ...)")
}

// The aircraft and type tables reference the occurrence table; each view
// walks the satellite table, resolves the reference, and keeps accidents
// only. Rows whose reference resolves to nothing are skipped and counted.

// {{{ refInDateRange

// Only needed when a date range is set; the lookup can't fail then,
// because the caller has already matched the reference.
func refInDateRange(r *report.Report, ds *odb.Dataset, ref int64) bool {
	if !r.Options.HasDateRange() { return true }
	o,exists := ds.OccurrenceByID(ref)
	return exists && r.Options.WithinDateRange(o.Date)
}

// }}}
// {{{ SegmentsReporter

func SegmentsReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,a := range ds.Aircraft {
		class,matched := ds.ClassificationOf(a.OccurrenceRef)
		if !matched {
			r.I["[C] aircraft rows w/ unmatched ref"]++
			continue
		}
		if class != odb.Accident { continue }
		if !refInDateRange(r, ds, a.OccurrenceRef) { continue }
		counts[a.Segment]++
	}

	r.AddCountRows("segment", counts, r.Options.TopNOrDefault(7))
	return nil
}

// }}}
// {{{ PhasesReporter

func PhasesReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,a := range ds.Aircraft {
		class,matched := ds.ClassificationOf(a.OccurrenceRef)
		if !matched {
			r.I["[C] aircraft rows w/ unmatched ref"]++
			continue
		}
		if class != odb.Accident { continue }
		if !refInDateRange(r, ds, a.OccurrenceRef) { continue }
		counts[a.OperationPhase]++
	}

	r.AddCountRows("phase", counts, r.Options.TopNOrDefault(10))
	return nil
}

// }}}
// {{{ TypesReporter

func TypesReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,t := range ds.Types {
		class,matched := ds.ClassificationOf(t.OccurrenceRef)
		if !matched {
			r.I["[C] type rows w/ unmatched ref"]++
			continue
		}
		if class != odb.Accident { continue }
		if !refInDateRange(r, ds, t.OccurrenceRef) { continue }
		counts[t.Type]++
	}

	r.AddCountRows("type", counts, r.Options.TopNOrDefault(10))
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
