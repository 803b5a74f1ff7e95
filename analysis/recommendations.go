package analysis

import(
	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

func init() {
	report.HandleReport("recommendations", RecommendationsReporter,
		"Safety recommendation counts per status")
}

// Recommendations carry no occurrence reference, so this view ignores
// any date range; it always covers the whole snapshot.
func RecommendationsReporter(r *report.Report, ds *odb.Dataset) error {
	counts := map[string]int{}

	for _,rec := range ds.Recommendations {
		counts[rec.Status]++
	}

	r.AddCountRows("status", counts, r.Options.TopNOrDefault(10))
	return nil
}
