package occurrencedb

// OccurrenceType is one type label attached to an occurrence (an
// occurrence can carry several). Rows without a Type are dropped at load.
type OccurrenceType struct {
	OccurrenceRef  int64   // joins to Occurrence.ID
	Type           string
}
