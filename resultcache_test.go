package occurrencedb

import(
	"testing"
	"time"
)

func TestResultCache(t *testing.T) {
	c := NewResultCache(time.Hour)

	if _,exists := c.Lookup("k"); exists {
		t.Errorf("empty cache - lookup succeeded")
	}

	c.Add("k", []string{"label","n"}, [][]string{{"POUSO","12"}})

	res,exists := c.Lookup("k")
	if !exists {
		t.Fatalf("lookup after add failed")
	}
	if len(res.Rows) != 1 || res.Rows[0][0] != "POUSO" {
		t.Errorf("cached rows mangled: %v", res.Rows)
	}
	if c.Len() != 1 {
		t.Errorf("expected len 1, got %d", c.Len())
	}
}

func TestResultCacheAging(t *testing.T) {
	c := NewResultCache(time.Millisecond)

	c.Add("k", []string{"label","n"}, [][]string{})
	time.Sleep(5 * time.Millisecond)

	if _,exists := c.Lookup("k"); exists {
		t.Errorf("stale entry survived lookup")
	}
	if c.Len() != 0 {
		t.Errorf("stale entry not evicted")
	}
}
