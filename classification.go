package occurrencedb

import "strings"

// CENIPA classifies every occurrence as one of three severities. Rows
// that join against a missing occurrence end up Unclassified.
type Classification int
const(
	Unclassified Classification = iota
	Accident
	SeriousIncident
	Incident
)

// The literal tokens found in ocorrencia.csv.
const(
	kAccidentToken        = "ACIDENTE"
	kSeriousIncidentToken = "INCIDENTE GRAVE"
	kIncidentToken        = "INCIDENTE"
)

func ParseClassification(s string) Classification {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case kAccidentToken:        return Accident
	case kSeriousIncidentToken: return SeriousIncident
	case kIncidentToken:        return Incident
	}
	return Unclassified
}

func (c Classification)String() string {
	switch c {
	case Accident:        return kAccidentToken
	case SeriousIncident: return kSeriousIncidentToken
	case Incident:        return kIncidentToken
	}
	return ""
}

func (c Classification)IsClassified() bool { return c != Unclassified }
