package report

import(
	"fmt"
	"sort"
)

// GroupCount is one output row of a count/sum view.
type GroupCount struct {
	Label  string
	Count  int
}

// RankCounts orders groups descending by aggregate; equal counts break
// ties lexicographically on the label, so output is deterministic.
func RankCounts(counts map[string]int) []GroupCount {
	out := []GroupCount{}
	for k,v := range counts {
		out = append(out, GroupCount{k,v})
	}

	sort.Slice(out, func(i,j int) bool {
		if out[i].Count != out[j].Count { return out[i].Count > out[j].Count }
		return out[i].Label < out[j].Label
	})

	return out
}

// TopN truncates after ranking; n<=0 means no truncation.
func TopN(in []GroupCount, n int) []GroupCount {
	if n <= 0 || n >= len(in) { return in }
	return in[:n]
}

// AddCountRows is the tail end of every count view: rank, truncate, emit.
func (r *Report)AddCountRows(labelHeader string, counts map[string]int, n int) {
	r.SetHeaders([]string{labelHeader, "n"})

	for _,gc := range TopN(RankCounts(counts), n) {
		row := []string{gc.Label, fmt.Sprintf("%d", gc.Count)}
		r.AddRow(&row, &row)
	}

	r.I["[C] groups emitted"] = len(r.RowsText)
	r.I["[C] groups total"] = len(counts)
}
