package occurrencedb

// Recommendation is a safety recommendation issued after investigation.
// The dashboard only aggregates on Status, so that's all we keep; no
// foreign key is used.
type Recommendation struct {
	Status  string  // sentinel-filled when missing
}
