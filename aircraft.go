package occurrencedb

// Aircraft is one airframe involved in an occurrence; an occurrence can
// involve several (midair collisions, ground conflicts).
type Aircraft struct {
	OccurrenceRef   int64   // joins to Occurrence.ID
	Fatalities      int     // 0 when the file value was missing or non-numeric
	Segment         string  // registration segment (PARTICULAR, AGRÍCOLA, ...); sentinel-filled
	OperationPhase  string  // phase of flight (POUSO, DECOLAGEM, ...); sentinel-filled
}
