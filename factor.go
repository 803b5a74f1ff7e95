package occurrencedb

// ContributingFactor is one coded cause attributed to an occurrence
// during investigation. Rows without an Area are dropped at load time.
type ContributingFactor struct {
	OccurrenceRef  int64   // joins to Occurrence.ID
	Area           string  // FATOR HUMANO / FATOR MATERIAL / FATOR OPERACIONAL
	Name           string  // the specific factor within the area
}
