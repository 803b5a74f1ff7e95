package cenipa

import(
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	odb "github.com/skypies/occurrencedb"
)

// Each table declares its schema; a missing column fails the whole load
// rather than surfacing as weird empty aggregates later.
var requiredColumns = map[string][]string{
	OccurrenceFile:     {colOccurrenceID, colClassification, colDate, colState, colCity},
	AircraftFile:       {colAircraftRef, colFatalities, colSegment, colPhase},
	FactorFile:         {colFactorRef, colFactorArea, colFactorName},
	TypeFile:           {colTypeRef, colType},
	RecommendationFile: {colRecStatus},
}

func (c Config)requiredColumnsFor(name string) []string {
	cols := requiredColumns[name]
	if name == OccurrenceFile && c.RequireCoordinates {
		cols = append(append([]string{}, cols...), colLatitude, colLongitude)
	}
	return cols
}

func (c Config)displayPath(name string) string {
	if c.Bucket != "" {
		return fmt.Sprintf("gs://%s/%s", c.Bucket, path.Join(c.Dir, name))
	}
	return filepath.Join(c.Dir, name)
}

// {{{ LoadDataset

// LoadDataset runs the whole pipeline: read the five tables, clean each
// one, and assemble the immutable snapshot. It either returns a complete
// dataset or an error; no partial output ever escapes.
func LoadDataset(ctx context.Context, cfg Config) (*odb.Dataset, error) {
	cm,err := cfg.charmap()
	if err != nil { return nil, err }

	src,err := newSource(ctx, cfg)
	if err != nil { return nil, err }

	readTable := func(name string) ([]Row, error) {
		rc,err := src.Open(ctx, name)
		if err != nil { return nil, err }  // already a MissingFileError / LoadError
		defer rc.Close()

		rdr := NewRowReader(rc, cm, cfg.MissingTokens)
		if err := rdr.HasColumns(cfg.requiredColumnsFor(name)); err != nil {
			return nil, LoadError{Path:cfg.displayPath(name), Err:err}
		}

		rows,err := rdr.ReadAll()
		if errors.Is(err, ErrUndecodable) {
			return nil, EncodingError{Path:cfg.displayPath(name), Encoding:cfg.Encoding, Err:err}
		} else if err != nil {
			return nil, LoadError{Path:cfg.displayPath(name), Err:err}
		}
		return rows, nil
	}

	occRows,err := readTable(OccurrenceFile)
	if err != nil { return nil, err }
	aircraftRows,err := readTable(AircraftFile)
	if err != nil { return nil, err }
	factorRows,err := readTable(FactorFile)
	if err != nil { return nil, err }
	typeRows,err := readTable(TypeFile)
	if err != nil { return nil, err }
	recRows,err := readTable(RecommendationFile)
	if err != nil { return nil, err }

	statesGeoJSON := []byte{}
	if cfg.RequireCoordinates {
		rc,err := src.Open(ctx, StatesFile)
		if err != nil { return nil, err }
		defer rc.Close()
		if statesGeoJSON,err = io.ReadAll(rc); err != nil {
			return nil, LoadError{Path:cfg.displayPath(StatesFile), Err:err}
		}
	}

	ds := odb.NewDataset(
		cleanOccurrences(occRows, cfg.RequireCoordinates),
		cleanAircraft(aircraftRows),
		cleanFactors(factorRows),
		cleanTypes(typeRows),
		cleanRecommendations(recRows),
		statesGeoJSON)

	return ds, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
