package ui

import(
	"encoding/json"
	"net/http"

	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

// OverviewJSONHandler is the headline-numbers endpoint the dashboard
// front page polls; just the overview report, flattened.
func OverviewJSONHandler(ds *odb.Dataset, cache *odb.ResultCache, w http.ResponseWriter, r *http.Request) {
	rep,err := report.InstantiateReport("overview")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := rep.Run(ds); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := struct {
		Occurrences  int    `json:"occurrences"`
		Accidents    int    `json:"accidents"`
		Fatalities   int    `json:"fatalities"`
		Signature    string `json:"signature"`
	}{
		Occurrences: rep.I["[C] occurrences"],
		Accidents: rep.I["[C] accidents"],
		Fatalities: rep.I["[C] fatalities"],
		Signature: ds.Signature(),
	}

	jsonBytes,err := json.MarshalIndent(out, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}
