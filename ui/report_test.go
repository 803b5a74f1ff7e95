package ui

import(
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	odb "github.com/skypies/occurrencedb"
	_ "github.com/skypies/occurrencedb/analysis" // populate the reports registry
)

// {{{ testDataset

func day(s string) time.Time {
	t,_ := time.Parse("2006-01-02", s)
	return t
}

func testDataset() *odb.Dataset {
	occs := []odb.Occurrence{
		{ID:1, Classification:odb.Accident, Date:day("2019-03-02"), Year:2019,
			State:"SP", City:"CAMPINAS"},
	}
	aircraft := []odb.Aircraft{
		{OccurrenceRef:1, Fatalities:2, Segment:"PARTICULAR", OperationPhase:"POUSO"},
	}

	return odb.NewDataset(occs, aircraft, nil, nil, nil,
		[]byte(`{"type":"FeatureCollection","features":[]}`))
}

// }}}

func TestReportHandlerCSV(t *testing.T) {
	ds, cache := testDataset(), odb.NewResultCache(time.Hour)

	r := httptest.NewRequest("GET", "/report?rep=segments&format=csv", nil)
	w := httptest.NewRecorder()
	WithDataset(ds, cache, ReportHandler)(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "segment,n") || !strings.Contains(body, "PARTICULAR,1") {
		t.Errorf("unexpected csv body:\n%s", body)
	}

	// The result must now be memoized.
	if cache.Len() != 1 {
		t.Errorf("expected 1 cached result, got %d", cache.Len())
	}

	// Replay from cache; identical output.
	w2 := httptest.NewRecorder()
	WithDataset(ds, cache, ReportHandler)(w2,
		httptest.NewRequest("GET", "/report?rep=segments&format=csv", nil))
	if w2.Body.String() != body {
		t.Errorf("cached replay differs:\n%s\nvs\n%s", body, w2.Body.String())
	}
}

func TestReportHandlerJSON(t *testing.T) {
	ds, cache := testDataset(), odb.NewResultCache(time.Hour)

	r := httptest.NewRequest("GET", "/report?rep=segments&format=json", nil)
	w := httptest.NewRecorder()
	WithDataset(ds, cache, ReportHandler)(w, r)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	out := struct {
		Name     string     `json:"name"`
		Headers  []string   `json:"headers"`
		Rows     [][]string `json:"rows"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if out.Name != "segments" || len(out.Rows) != 1 || out.Rows[0][0] != "PARTICULAR" {
		t.Errorf("unexpected json payload: %+v", out)
	}
}

func TestReportHandlerErrors(t *testing.T) {
	ds, cache := testDataset(), odb.NewResultCache(time.Hour)

	// No rep arg.
	w := httptest.NewRecorder()
	WithDataset(ds, cache, ReportHandler)(w, httptest.NewRequest("GET", "/report", nil))
	if w.Code != 400 {
		t.Errorf("missing rep - expected 400, got %d", w.Code)
	}

	// Unknown format.
	w = httptest.NewRecorder()
	WithDataset(ds, cache, ReportHandler)(w,
		httptest.NewRequest("GET", "/report?rep=segments&format=stone-tablet", nil))
	if w.Code != 400 {
		t.Errorf("bad format - expected 400, got %d", w.Code)
	}
}

func TestOverviewJSONHandler(t *testing.T) {
	ds, cache := testDataset(), odb.NewResultCache(time.Hour)

	w := httptest.NewRecorder()
	WithDataset(ds, cache, OverviewJSONHandler)(w, httptest.NewRequest("GET", "/api/overview", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	out := struct {
		Occurrences  int `json:"occurrences"`
		Accidents    int `json:"accidents"`
		Fatalities   int `json:"fatalities"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if out.Occurrences != 1 || out.Accidents != 1 || out.Fatalities != 2 {
		t.Errorf("unexpected overview: %+v", out)
	}
}

func TestStatesMapHandler(t *testing.T) {
	ds, cache := testDataset(), odb.NewResultCache(time.Hour)

	w := httptest.NewRecorder()
	WithDataset(ds, cache, StatesMapHandler)(w, httptest.NewRequest("GET", "/map/states", nil))
	if w.Code != 200 || !strings.Contains(w.Body.String(), "FeatureCollection") {
		t.Errorf("expected the geojson back, got %d: %s", w.Code, w.Body.String())
	}

	// A dataset loaded without coordinates has no boundaries to serve.
	bare := odb.NewDataset(nil, nil, nil, nil, nil, nil)
	w = httptest.NewRecorder()
	WithDataset(bare, cache, StatesMapHandler)(w, httptest.NewRequest("GET", "/map/states", nil))
	if w.Code != 404 {
		t.Errorf("no boundaries - expected 404, got %d", w.Code)
	}
}
