// Package cenipa loads and cleans the CENIPA occurrence CSV dumps.
//
// The dumps are semicolon-separated, windows-1252 (older dumps are
// latin-1), and use a handful of literal tokens for missing values.
// File-level problems (missing file, undecodable bytes, bad schema) are
// fatal and abort the whole load; row-level data problems never are --
// each has a fixed local recovery (drop the row, substitute a zero,
// substitute a sentinel label).
package cenipa

import(
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// The five fixed input files, plus the state-boundary document the map
// view passes through to clients.
const(
	OccurrenceFile      = "ocorrencia.csv"
	AircraftFile        = "aeronave.csv"
	FactorFile          = "fator_contribuinte.csv"
	TypeFile            = "ocorrencia_tipo.csv"
	RecommendationFile  = "recomendacao.csv"
	StatesFile          = "br_states.json"
)

type Config struct {
	Dir                 string    // local directory holding the files
	Bucket              string    // if non-empty, read gs://Bucket/Dir instead
	Encoding            string    // "windows-1252" or "latin-1"; applies to all five files
	MissingTokens     []string    // literal tokens treated as absent values

	// When set, occurrence coordinates are cleaned from the free-text
	// lat/long fields and rows outside the Brazil bounding box (or still
	// missing year/state/position) are dropped. br_states.json becomes a
	// required input.
	RequireCoordinates  bool
}

func DefaultConfig() Config {
	return Config{
		Dir: "data",
		Encoding: "windows-1252",
		MissingTokens: []string{"***", "****", "NULL", "NA", "N/A", ""},
	}
}

func (c Config)charmap() (*charmap.Charmap, error) {
	switch strings.ToLower(c.Encoding) {
	case "windows-1252", "cp1252":           return charmap.Windows1252, nil
	case "latin-1", "latin1", "iso-8859-1":  return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("unsupported encoding '%s' (try 'windows-1252' or 'latin-1')",
		c.Encoding)
}
