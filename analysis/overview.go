// Package analysis holds the report functions themselves. Each file
// registers its views in init(), so importing this package (even just
// for side effects) populates the report registry.
package analysis

import(
	"fmt"
	"sort"

	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

func init() {
	report.HandleReport("overview", OverviewReporter,
		"Headline totals: occurrences, accidents, fatalities")
	report.HandleReport("classifications", ClassificationsReporter,
		"Occurrence counts per classification")
	report.HandleReport("peryear", PerYearReporter,
		"Occurrence counts per year and classification, 2007 onwards")
	report.SummarizeReport("overview", summarizeOverview)
}

// {{{ OverviewReporter

func OverviewReporter(r *report.Report, ds *odb.Dataset) error {
	nOccurrences, nAccidents := 0, 0

	for _,o := range ds.Occurrences {
		if !r.Options.WithinDateRange(o.Date) { continue }
		nOccurrences++
		if o.Classification == odb.Accident { nAccidents++ }
	}

	// Fatalities are a plain sum over the whole aircraft table, no join;
	// an aircraft row still counts even when its occurrence was dropped
	// in cleaning. The date range never restricts this sum.
	nFatalities := 0
	for _,a := range ds.Aircraft {
		nFatalities += a.Fatalities
	}

	r.SetHeaders([]string{"metric", "n"})
	for _,pair := range [][2]string{
		{"occurrences", fmt.Sprintf("%d", nOccurrences)},
		{"accidents",   fmt.Sprintf("%d", nAccidents)},
		{"fatalities",  fmt.Sprintf("%d", nFatalities)},
	} {
		row := []string{pair[0], pair[1]}
		r.AddRow(&row, &row)
	}

	r.I["[C] occurrences"] = nOccurrences
	r.I["[C] accidents"] = nAccidents
	r.I["[C] fatalities"] = nFatalities

	return nil
}

func summarizeOverview(r *report.Report) {
	r.Infof("%d occurrences (%d accidents), %d fatalities\n",
		r.I["[C] occurrences"], r.I["[C] accidents"], r.I["[C] fatalities"])
}

// }}}
// {{{ ClassificationsReporter

func ClassificationsReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,o := range ds.Occurrences {
		if !r.Options.WithinDateRange(o.Date) { continue }
		counts[o.Classification.String()]++
	}

	r.AddCountRows("classification", counts, r.Options.TopNOrDefault(0))
	return nil
}

// }}}
// {{{ PerYearReporter

// The early years of the database are too sparsely recorded to trend,
// so this view starts at 2007.
func PerYearReporter(r *report.Report, ds *odb.Dataset) error {
	type yearClass struct {
		year   int
		class  string
	}
	counts := map[yearClass]int{}

	for _,o := range ds.Occurrences {
		if o.Year < odb.FirstTrendYear { continue }
		if !r.Options.WithinDateRange(o.Date) { continue }
		counts[yearClass{o.Year, o.Classification.String()}]++
	}

	keys := []yearClass{}
	for k,_ := range counts { keys = append(keys, k) }
	sort.Slice(keys, func(i,j int) bool {
		if keys[i].year != keys[j].year { return keys[i].year < keys[j].year }
		return keys[i].class < keys[j].class
	})

	r.SetHeaders([]string{"year", "classification", "n"})
	for _,k := range keys {
		row := []string{fmt.Sprintf("%d", k.year), k.class, fmt.Sprintf("%d", counts[k])}
		r.AddRow(&row, &row)
	}

	r.I["[C] year/class groups"] = len(counts)
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
