package report

// All reports share this same options struct. Some options apply to all
// reports, some are interpreted creatively by others, and some only
// apply to one kind of report. They are all parsed off the http.Request,
// including the report name.

import(
	"fmt"
	"net/http"
	"time"

	"github.com/skypies/util/widget"

	odb "github.com/skypies/occurrencedb"
)

type Options struct {
	Name               string
	Start, End         time.Time  // optional; restricts occurrence-backed views by date
	TopN               int        // 0 means "use the report's own default"
	FactorArea         string     // for the factor-name zoom; defaults to the human factor

	ReportLogLevel
}

func FormValueReportOptions(r *http.Request) (Options, error) {
	if r.FormValue("rep") == "" {
		return Options{}, fmt.Errorf("url arg 'rep' missing (no report specified)")
	}

	opt := Options{
		Name: r.FormValue("rep"),
		TopN: int(widget.FormValueIntWithDefault(r, "n", 0)),
		FactorArea: r.FormValue("area"),
		ReportLogLevel: INFO,
	}

	if opt.FactorArea == "" { opt.FactorArea = odb.DefaultFactorArea }
	if r.FormValue("debuglog") != "" { opt.ReportLogLevel = DEBUG }

	// The date range is optional; most views run over the whole snapshot.
	if r.FormValue("date") != "" {
		s,e,err := widget.FormValueDateRange(r)
		if err != nil { return Options{}, err }
		opt.Start, opt.End = s, e
	}

	return opt, nil
}

// A bare minimum of args; doubles as the memoization key for the options.
func (r *Report)ToCGIArgs() string {
	str := fmt.Sprintf("rep=%s&n=%d&area=%s", r.Options.Name, r.Options.TopN, r.Options.FactorArea)
	if !r.Options.Start.IsZero() {
		str += "&" + widget.DateRangeToCGIArgs(r.Options.Start, r.Options.End)
	}
	return str
}

func (o Options)HasDateRange() bool { return !o.Start.IsZero() }

func (o Options)WithinDateRange(t time.Time) bool {
	if !o.HasDateRange() { return true }
	return !t.Before(o.Start) && !t.After(o.End)
}

// Each view picks its own dashboard default; the caller can override.
func (o Options)TopNOrDefault(def int) int {
	if o.TopN > 0 { return o.TopN }
	return def
}
