package main

import(
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/context"

	odb "github.com/skypies/occurrencedb"
	_ "github.com/skypies/occurrencedb/analysis" // populate the reports registry
	"github.com/skypies/occurrencedb/cenipa"
	"github.com/skypies/occurrencedb/ui"
)

var(
	fDir      = flag.String("dir", "data", "directory (or bucket prefix) holding the CENIPA files")
	fBucket   = flag.String("bucket", "", "GCS bucket to load from instead of the local disk")
	fEncoding = flag.String("encoding", "windows-1252", "text encoding of the source files")
	fCoords   = flag.Bool("coords", true, "clean coordinates and load the state boundaries")
	fCacheAge = flag.Duration("cacheage", time.Hour, "how long to keep memoized report results")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg := cenipa.DefaultConfig()
	cfg.Dir = *fDir
	cfg.Bucket = *fBucket
	cfg.Encoding = *fEncoding
	cfg.RequireCoordinates = *fCoords

	// One snapshot per process; restart to pick up new files.
	ds,err := cenipa.LoadDataset(ctx, cfg)
	if err != nil { log.Fatal(err) }
	log.Printf("loaded %s", ds)

	cache := odb.NewResultCache(*fCacheAge)

	// ui/report.go
	http.HandleFunc("/report", ui.WithDataset(ds, cache, ui.ReportHandler))
	http.HandleFunc("/report/list", ui.WithDataset(ds, cache, ui.ListReportsHandler))

	// ui/json.go
	http.HandleFunc("/api/overview", ui.WithDataset(ds, cache, ui.OverviewJSONHandler))

	// ui/map.go
	http.HandleFunc("/map/states", ui.WithDataset(ds, cache, ui.StatesMapHandler))
	http.HandleFunc("/map/points", ui.WithDataset(ds, cache, ui.PointsMapHandler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening on port %s [occurrencedb/app/frontend]", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
