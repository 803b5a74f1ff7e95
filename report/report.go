package report

import(
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	odb "github.com/skypies/occurrencedb"
)

type ReportFunc func(*Report, *odb.Dataset) error
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Output state
	RowsHTML  [][]template.HTML
	RowsText  [][]string

	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsHTML: [][]template.HTML{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Stats: histogram.NewSet(40000),  // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof(s) }
func (r *Report)Debug(s string) { r.Debugf(s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(html *[]string, text *[]string) {
	htmlRow := []template.HTML{}
	for _,s  := range *html { htmlRow = append(htmlRow, template.HTML(s)) }
	if html != nil { r.RowsHTML = append(r.RowsHTML, htmlRow) }
	if text != nil { r.RowsText = append(r.RowsText, *text) }
}

// Run executes the report function over the (immutable) dataset. The
// dataset is never written to, so any number of reports can run over the
// same snapshot concurrently.
func (r *Report)Run(ds *odb.Dataset) error {
	tStart := time.Now()

	if err := r.Func(r, ds); err != nil { return err }
	r.Stats.RecordValue("run", (time.Since(tStart).Nanoseconds()/1000))

	r.FinishSummary()
	return nil
}

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	r.Debug("* (DEBUG)\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Infof("Stats (in micros):-\n%s", r.Stats)
}

// Results are a pure function of (dataset, options), so this key is all
// a memoizing cache needs.
func (r *Report)CacheKey(ds *odb.Dataset) string {
	return ds.Signature() + "|" + r.ToCGIArgs()
}

func (r *Report)MetadataTable()[][]template.HTML {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.1f", v) }
	for k,v := range r.S { all[k] = v }

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]template.HTML{}
	for _,k := range keys {
		out = append(out, []template.HTML{ template.HTML(k), template.HTML(all[k]) })
	}

	return out
}
