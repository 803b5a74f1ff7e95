package cenipa

import(
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skypies/geo"

	odb "github.com/skypies/occurrencedb"
)

// Column names as declared in the source files. The numeric suffixes on
// the foreign-key columns are CENIPA's, not ours; all three reference
// codigo_ocorrencia in the occurrence table.
const(
	colOccurrenceID   = "codigo_ocorrencia"
	colClassification = "ocorrencia_classificacao"
	colDate           = "ocorrencia_dia"
	colState          = "ocorrencia_uf"
	colCity           = "ocorrencia_cidade"
	colLatitude       = "ocorrencia_latitude"
	colLongitude      = "ocorrencia_longitude"

	colAircraftRef    = "codigo_ocorrencia2"
	colFatalities     = "aeronave_fatalidades_total"
	colSegment        = "aeronave_registro_segmento"
	colPhase          = "aeronave_fase_operacao"

	colFactorRef      = "codigo_ocorrencia3"
	colFactorArea     = "fator_area"
	colFactorName     = "fator_nome"

	colTypeRef        = "codigo_ocorrencia1"
	colType           = "ocorrencia_tipo"

	colRecStatus      = "recomendacao_status"
)

// The plausible bounding box for Brazil. Edges are inclusive.
const(
	BrazilLatMin  = -34.0
	BrazilLatMax  =   6.0
	BrazilLongMin = -74.0
	BrazilLongMax = -34.0
)

// {{{ parseDayFirstDate

// The dumps write dates day-first; some vintages use two-digit years or
// ISO dashes.
var dateLayouts = []string{"02/01/2006", "02/01/06", "2006-01-02"}

func parseDayFirstDate(s string) (time.Time, bool) {
	for _,layout := range dateLayouts {
		if t,err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// }}}
// {{{ parseCoordinate

// The position fields are free text ("-23,4356", "  -48.123 W", ...).
// Normalize decimal commas, pull out the first signed number, and treat
// anything outside ±180 as absent.
var coordR = regexp.MustCompile(`-?\d+(\.\d+)?`)

func parseCoordinate(s string) *float64 {
	if s == "" { return nil }

	cleaned := strings.TrimSpace(strings.Replace(s, ",", ".", -1))
	match := coordR.FindString(cleaned)
	if match == "" { return nil }

	val,err := strconv.ParseFloat(match, 64)
	if err != nil { return nil }
	if val < -180 || val > 180 { return nil }

	return &val
}

// }}}

// {{{ cleanOccurrences

// Rows whose date won't parse are dropped outright, never defaulted;
// Year is always the calendar year of a real date. With requireCoords
// set, rows also need a state code and an in-box position to survive.
func cleanOccurrences(rows []Row, requireCoords bool) []odb.Occurrence {
	out := []odb.Occurrence{}

	for _,row := range rows {
		id,err := strconv.ParseInt(row[colOccurrenceID], 10, 64)
		if err != nil { continue }  // no join key, no use for the row

		t,ok := parseDayFirstDate(row[colDate])
		if !ok { continue }

		o := odb.Occurrence{
			ID: id,
			Classification: odb.ParseClassification(row[colClassification]),
			Date: t,
			Year: t.Year(),
			State: row[colState],
			City: row[colCity],
			RawLatitude: row[colLatitude],
			RawLongitude: row[colLongitude],
		}

		if requireCoords {
			lat := parseCoordinate(o.RawLatitude)
			long := parseCoordinate(o.RawLongitude)
			if lat == nil || long == nil { continue }
			if *lat < BrazilLatMin || *lat > BrazilLatMax { continue }
			if *long < BrazilLongMin || *long > BrazilLongMax { continue }
			if o.State == "" { continue }
			o.Pos = &geo.Latlong{Lat:*lat, Long:*long}
		}

		out = append(out, o)
	}

	return out
}

// }}}
// {{{ cleanAircraft

func cleanAircraft(rows []Row) []odb.Aircraft {
	out := []odb.Aircraft{}

	for _,row := range rows {
		ref,err := strconv.ParseInt(row[colAircraftRef], 10, 64)
		if err != nil { continue }

		a := odb.Aircraft{
			OccurrenceRef: ref,
			Segment: row[colSegment],
			OperationPhase: row[colPhase],
		}

		// Fatality counts arrive as "0", "2.0", or junk; junk means zero,
		// never a dropped row. Negative values are recording errors.
		if v,err := strconv.ParseFloat(row[colFatalities], 64); err == nil && v > 0 {
			a.Fatalities = int(v)
		}

		if a.Segment == ""        { a.Segment = odb.SentinelSegment }
		if a.OperationPhase == "" { a.OperationPhase = odb.SentinelOperationPhase }

		out = append(out, a)
	}

	return out
}

// }}}
// {{{ cleanFactors

func cleanFactors(rows []Row) []odb.ContributingFactor {
	out := []odb.ContributingFactor{}

	for _,row := range rows {
		ref,err := strconv.ParseInt(row[colFactorRef], 10, 64)
		if err != nil { continue }
		if row[colFactorArea] == "" { continue }  // area is required; no sentinel here

		out = append(out, odb.ContributingFactor{
			OccurrenceRef: ref,
			Area: row[colFactorArea],
			Name: row[colFactorName],
		})
	}

	return out
}

// }}}
// {{{ cleanTypes

func cleanTypes(rows []Row) []odb.OccurrenceType {
	out := []odb.OccurrenceType{}

	for _,row := range rows {
		ref,err := strconv.ParseInt(row[colTypeRef], 10, 64)
		if err != nil { continue }
		if row[colType] == "" { continue }

		out = append(out, odb.OccurrenceType{ OccurrenceRef:ref, Type:row[colType] })
	}

	return out
}

// }}}
// {{{ cleanRecommendations

func cleanRecommendations(rows []Row) []odb.Recommendation {
	out := []odb.Recommendation{}

	for _,row := range rows {
		status := row[colRecStatus]
		if status == "" { status = odb.SentinelRecStatus }
		out = append(out, odb.Recommendation{ Status:status })
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
