package occurrencedb

import(
	"fmt"
	"hash/fnv"
)

// Dataset is the immutable output of the load+clean pipeline: the five
// cleaned tables, the (opaque) state-boundary document, and an index from
// occurrence ID to the occurrence row. It is built exactly once per load
// and then shared read-only; nothing mutates it afterwards, so any number
// of consumers can hold it concurrently.
type Dataset struct {
	Occurrences      []Occurrence
	Aircraft         []Aircraft
	Factors          []ContributingFactor
	Types            []OccurrenceType
	Recommendations  []Recommendation

	// br_states.json, passed straight through to map clients; the
	// pipeline never looks inside it.
	StatesGeoJSON    []byte

	byID       map[int64]*Occurrence
	signature  string
}

func NewDataset(occs []Occurrence, aircraft []Aircraft, factors []ContributingFactor,
	types []OccurrenceType, recs []Recommendation, statesGeoJSON []byte) *Dataset {

	ds := Dataset{
		Occurrences: occs,
		Aircraft: aircraft,
		Factors: factors,
		Types: types,
		Recommendations: recs,
		StatesGeoJSON: statesGeoJSON,
		byID: map[int64]*Occurrence{},
	}

	for i,o := range ds.Occurrences {
		ds.byID[o.ID] = &ds.Occurrences[i]
	}

	ds.signature = ds.computeSignature()

	return &ds
}

// OccurrenceByID is the join primitive: many-to-one from a satellite row
// to its occurrence.
func (ds *Dataset)OccurrenceByID(id int64) (*Occurrence, bool) {
	o,exists := ds.byID[id]
	return o, exists
}

// ClassificationOf reports Unclassified,false for an unmatched reference;
// a caller that skips unmatched refs gets inner-join semantics, one that
// doesn't gets the left-join behavior (null classification).
func (ds *Dataset)ClassificationOf(id int64) (Classification, bool) {
	if o,exists := ds.byID[id]; exists {
		return o.Classification, true
	}
	return Unclassified, false
}

// Signature is a content hash of the snapshot. Identical input bytes
// yield identical signatures, so it can key memoized report results.
func (ds *Dataset)Signature() string { return ds.signature }

func (ds *Dataset)computeSignature() string {
	h := fnv.New64a()

	for _,o := range ds.Occurrences {
		fmt.Fprintf(h, "O|%d|%d|%s|%d|%s|%s|%s|%s|", o.ID, o.Classification,
			o.Date.Format("2006-01-02"), o.Year, o.State, o.City, o.RawLatitude, o.RawLongitude)
		if o.Pos != nil {
			fmt.Fprintf(h, "%.6f,%.6f", o.Pos.Lat, o.Pos.Long)
		}
	}
	for _,a := range ds.Aircraft {
		fmt.Fprintf(h, "A|%d|%d|%s|%s|", a.OccurrenceRef, a.Fatalities, a.Segment, a.OperationPhase)
	}
	for _,f := range ds.Factors {
		fmt.Fprintf(h, "F|%d|%s|%s|", f.OccurrenceRef, f.Area, f.Name)
	}
	for _,t := range ds.Types {
		fmt.Fprintf(h, "T|%d|%s|", t.OccurrenceRef, t.Type)
	}
	for _,r := range ds.Recommendations {
		fmt.Fprintf(h, "R|%s|", r.Status)
	}
	h.Write(ds.StatesGeoJSON)

	return fmt.Sprintf("%016x", h.Sum64())
}

func (ds *Dataset)String() string {
	return fmt.Sprintf("{dataset %s: %d occurrences, %d aircraft, %d factors, %d types, %d recs}",
		ds.signature, len(ds.Occurrences), len(ds.Aircraft), len(ds.Factors), len(ds.Types),
		len(ds.Recommendations))
}
