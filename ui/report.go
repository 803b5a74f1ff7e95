package ui

import(
	"encoding/json"
	"fmt"
	"net/http"

	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/report"
)

// {{{ ReportHandler

// ReportHandler runs (or replays) a report and writes it in the asked-for
// format. /report?rep=segments&n=5&format=json
func ReportHandler(ds *odb.Dataset, cache *odb.ResultCache, w http.ResponseWriter, r *http.Request) {
	rep,err := report.SetupReport(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := rep.CacheKey(ds)
	if cached,exists := cache.Lookup(key); exists {
		rep.SetHeaders(cached.Headers)
		for _,row := range cached.Rows {
			row := row
			rep.AddRow(&row, &row)
		}

	} else {
		if err := rep.Run(ds); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		cache.Add(key, rep.HeadersText, rep.RowsText)
	}

	switch r.FormValue("format") {
	case "json", "":
		outputReportAsJSON(&rep, w)
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		if err := rep.OutputAsPDF(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s.csv", rep.Name))
		if err := rep.OutputAsCSV(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	default:
		http.Error(w, fmt.Sprintf("format '%s' not known", r.FormValue("format")),
			http.StatusBadRequest)
	}
}

// }}}
// {{{ outputReportAsJSON

func outputReportAsJSON(rep *report.Report, w http.ResponseWriter) {
	out := struct {
		Name     string     `json:"name"`
		Headers  []string   `json:"headers"`
		Rows     [][]string `json:"rows"`
	}{
		Name: rep.Name,
		Headers: rep.HeadersText,
		Rows: rep.RowsText,
	}

	jsonBytes,err := json.MarshalIndent(out, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}
// {{{ ListReportsHandler

func ListReportsHandler(ds *odb.Dataset, cache *odb.ResultCache, w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
	}

	out := []entry{}
	for _,e := range report.ListReports() {
		out = append(out, entry{e.Name, e.Description})
	}

	jsonBytes,err := json.MarshalIndent(out, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
