package ui

import(
	"encoding/json"
	"net/http"

	"github.com/skypies/geo"

	odb "github.com/skypies/occurrencedb"
)

// {{{ StatesMapHandler

// StatesMapHandler serves the state-boundary GeoJSON straight through;
// the pipeline never parses it, map clients do.
func StatesMapHandler(ds *odb.Dataset, cache *odb.ResultCache, w http.ResponseWriter, r *http.Request) {
	if len(ds.StatesGeoJSON) == 0 {
		http.Error(w, "no state boundary data in this dataset (loaded without coordinates?)",
			http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(ds.StatesGeoJSON)
}

// }}}
// {{{ PointsMapHandler

type MapPoint struct {
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`
	City   string  `json:"city"`
	State  string  `json:"state"`
	Date   string  `json:"date"`
}

// PointsMapHandler emits one point per accident with a position. Pass
// boxsw_lat etc (or just 'box' args) to restrict to a viewport.
func PointsMapHandler(ds *odb.Dataset, cache *odb.ResultCache, w http.ResponseWriter, r *http.Request) {
	box := geo.FormValueLatlongBox(r, "box")

	points := []MapPoint{}
	for _,o := range ds.Occurrences {
		if o.Classification != odb.Accident { continue }
		if !o.HasPos() { continue }
		if !box.SW.IsNil() && !box.Contains(*o.Pos) { continue }

		points = append(points, MapPoint{
			Lat: o.Pos.Lat,
			Long: o.Pos.Long,
			City: o.City,
			State: o.State,
			Date: o.Date.Format("2006-01-02"),
		})
	}

	jsonBytes,err := json.MarshalIndent(points, "", " ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
