package report

// go test -v github.com/skypies/occurrencedb/report

import "testing"

func TestRankCounts(t *testing.T) {
	counts := map[string]int{
		"FATOR HUMANO":      2,
		"FATOR MATERIAL":    1,
		"FATOR OPERACIONAL": 2,
	}

	ranked := RankCounts(counts)

	// Descending count; ties break lexicographically, so output is stable.
	want := []GroupCount{
		{"FATOR HUMANO", 2},
		{"FATOR OPERACIONAL", 2},
		{"FATOR MATERIAL", 1},
	}

	if len(ranked) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(ranked))
	}
	for i,w := range want {
		if ranked[i] != w {
			t.Errorf("rank %d - expected %v, got %v", i, w, ranked[i])
		}
	}
}

func TestTopN(t *testing.T) {
	in := []GroupCount{ {"A",5}, {"B",4}, {"C",3} }

	if got := TopN(in, 2); len(got) != 2 || got[1].Label != "B" {
		t.Errorf("TopN(2) - got %v", got)
	}
	if got := TopN(in, 0); len(got) != 3 {
		t.Errorf("TopN(0) should not truncate, got %v", got)
	}
	if got := TopN(in, 10); len(got) != 3 {
		t.Errorf("TopN(10) should not truncate, got %v", got)
	}
}

func TestAddCountRows(t *testing.T) {
	counts := map[string]int{}
	for i,label := range []string{"A","B","C","D","E","F","G","H","I","J","K"} {
		counts[label] = 100 - i
	}

	r := BlankReport()
	r.AddCountRows("segment", counts, 10)

	if len(r.RowsText) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(r.RowsText))
	}
	if r.HeadersText[0] != "segment" || r.HeadersText[1] != "n" {
		t.Errorf("bad headers: %v", r.HeadersText)
	}
	if r.RowsText[0][0] != "A" || r.RowsText[0][1] != "100" {
		t.Errorf("bad first row: %v", r.RowsText[0])
	}
	if r.I["[C] groups emitted"] != 10 || r.I["[C] groups total"] != 11 {
		t.Errorf("bad counters: %v", r.I)
	}
}
