package cenipa

import(
	"testing"

	odb "github.com/skypies/occurrencedb"
)

// {{{ TestParseDayFirstDate

func TestParseDayFirstDate(t *testing.T) {
	tests := []struct{
		raw   string
		ok    bool
		year  int
	}{
		{"03/01/2019", true,  2019},
		{"03/01/19",   true,  2019},
		{"2019-01-03", true,  2019},
		{"31/12/2006", true,  2006},
		{"2019/01/03", false, 0},
		{"41/01/2019", false, 0},
		{"not a date", false, 0},
		{"",           false, 0},
	}

	for _,test := range tests {
		d,ok := parseDayFirstDate(test.raw)
		if ok != test.ok {
			t.Errorf("'%s' - expected ok=%v, got %v", test.raw, test.ok, ok)
		} else if ok && d.Year() != test.year {
			t.Errorf("'%s' - expected year %d, got %d", test.raw, test.year, d.Year())
		}
	}
}

// }}}
// {{{ TestParseCoordinate

func TestParseCoordinate(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct{
		raw  string
		want *float64
	}{
		{"-23.4356",      f(-23.4356)},
		{"-23,4356",      f(-23.4356)},  // decimal comma
		{"  -48.123 W ",  f(-48.123)},   // junk around the number
		{"lat: 5",        f(5)},
		{"-181.0",        nil},          // outside plausible range
		{"250,75",        nil},
		{"",              nil},
		{"N/A parsed upstream", nil},
		{"--",            nil},
	}

	for _,test := range tests {
		got := parseCoordinate(test.raw)
		if (got == nil) != (test.want == nil) {
			t.Errorf("'%s' - expected %v, got %v", test.raw, test.want, got)
		} else if got != nil && *got != *test.want {
			t.Errorf("'%s' - expected %f, got %f", test.raw, *test.want, *got)
		}
	}
}

// }}}
// {{{ TestCleanOccurrences

func occRow(id, date, uf, lat, long string) Row {
	return Row{
		colOccurrenceID: id,
		colClassification: "ACIDENTE",
		colDate: date,
		colState: uf,
		colCity: "SOMEWHERE",
		colLatitude: lat,
		colLongitude: long,
	}
}

func TestCleanOccurrences(t *testing.T) {
	rows := []Row{
		occRow("1", "02/03/2019", "SP", "-23,4356", "-46,4731"),
		occRow("2", "",           "SP", "-23.0",    "-46.0"),    // no date: dropped
		occRow("x", "02/03/2019", "SP", "-23.0",    "-46.0"),    // junk id: dropped
		occRow("4", "15/07/2020", "RJ", "",         "-43.2"),
	}

	// Without coordinate cleaning, only date and id matter.
	out := cleanOccurrences(rows, false)
	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
	if out[0].Year != 2019 || out[0].Date.Day() != 2 || out[0].Date.Month() != 3 {
		t.Errorf("day-first date mishandled: %v", out[0].Date)
	}
	if out[0].Pos != nil {
		t.Errorf("position cleaned without being asked for")
	}

	// With coordinate cleaning, row 4 loses its empty latitude.
	out = cleanOccurrences(rows, true)
	if len(out) != 1 {
		t.Fatalf("requireCoords - expected 1 survivor, got %d", len(out))
	}
	if out[0].Pos == nil || out[0].Pos.Lat != -23.4356 {
		t.Errorf("position not cleaned: %v", out[0].Pos)
	}
}

func TestCleanOccurrencesBoundingBox(t *testing.T) {
	tests := []struct{
		lat, long  string
		uf         string
		kept       bool
	}{
		{"-23.5", "-46.6", "SP", true},
		{"-34",   "-46.6", "SP", true},   // box edges are inclusive
		{"6",     "-46.6", "SP", true},
		{"-23.5", "-74",   "SP", true},
		{"-23.5", "-34",   "SP", true},
		{"-34.1", "-46.6", "SP", false},  // just south
		{"6.1",   "-46.6", "SP", false},  // just north
		{"-23.5", "-74.1", "SP", false},  // just west
		{"-23.5", "-33.9", "SP", false},  // just east
		{"-23.5", "-46.6", "",   false},  // no state
	}

	for _,test := range tests {
		rows := []Row{ occRow("1", "02/03/2019", test.uf, test.lat, test.long) }
		out := cleanOccurrences(rows, true)
		if kept := len(out) == 1; kept != test.kept {
			t.Errorf("(%s,%s,%q) - expected kept=%v, got %v",
				test.lat, test.long, test.uf, test.kept, kept)
		}
	}
}

// }}}
// {{{ TestCleanAircraft

func TestCleanAircraft(t *testing.T) {
	rows := []Row{
		{colAircraftRef:"1", colFatalities:"2",    colSegment:"PARTICULAR", colPhase:"POUSO"},
		{colAircraftRef:"2", colFatalities:"3.0",  colSegment:"REGULAR",    colPhase:"CRUZEIRO"},
		{colAircraftRef:"3", colFatalities:"abc",  colSegment:"",           colPhase:""},
		{colAircraftRef:"4", colFatalities:"-1",   colSegment:"AGRICOLA",   colPhase:"DECOLAGEM"},
		{colAircraftRef:"",  colFatalities:"1",    colSegment:"TAXI AEREO", colPhase:"SUBIDA"},  // dropped
	}

	out := cleanAircraft(rows)
	if len(out) != 4 {
		t.Fatalf("expected 4 survivors, got %d", len(out))
	}

	// Junk and negative fatality counts both mean zero, never a dropped row.
	wantFatalities := []int{2, 3, 0, 0}
	for i,want := range wantFatalities {
		if out[i].Fatalities != want {
			t.Errorf("row %d - expected %d fatalities, got %d", i, want, out[i].Fatalities)
		}
	}

	// Blank segment/phase get the indeterminate sentinels.
	if out[2].Segment != odb.SentinelSegment {
		t.Errorf("expected sentinel segment, got %q", out[2].Segment)
	}
	if out[2].OperationPhase != odb.SentinelOperationPhase {
		t.Errorf("expected sentinel phase, got %q", out[2].OperationPhase)
	}
}

// }}}
// {{{ TestCleanFactorsTypesRecs

func TestCleanFactors(t *testing.T) {
	rows := []Row{
		{colFactorRef:"1", colFactorArea:"FATOR HUMANO", colFactorName:"JULGAMENTO DE PILOTAGEM"},
		{colFactorRef:"2", colFactorArea:"",             colFactorName:"SOMETHING"},  // no area: dropped
		{colFactorRef:"x", colFactorArea:"FATOR HUMANO", colFactorName:"Y"},          // junk ref: dropped
	}

	out := cleanFactors(rows)
	if len(out) != 1 || out[0].Area != "FATOR HUMANO" {
		t.Errorf("expected 1 survivor, got %v", out)
	}
}

func TestCleanTypes(t *testing.T) {
	rows := []Row{
		{colTypeRef:"1", colType:"PERDA DE CONTROLE EM VOO"},
		{colTypeRef:"2", colType:""},  // no type: dropped
	}

	out := cleanTypes(rows)
	if len(out) != 1 || out[0].Type != "PERDA DE CONTROLE EM VOO" {
		t.Errorf("expected 1 survivor, got %v", out)
	}
}

func TestCleanRecommendations(t *testing.T) {
	out := cleanRecommendations([]Row{
		{colRecStatus:"CUMPRIDA"},
		{colRecStatus:""},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[1].Status != odb.SentinelRecStatus {
		t.Errorf("expected sentinel status, got %q", out[1].Status)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
