package main

// Command-line access to the occurrence pipeline; load the files, run a
// report, print it as CSV.
//
//   odb -dir=./data -rep=segments
//   odb -dir=./data -rep=factornames -area="FATOR OPERACIONAL" -n=5
//   odb -bucket=my-bucket -ls

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	odb "github.com/skypies/occurrencedb"
	_ "github.com/skypies/occurrencedb/analysis" // populate the reports registry
	"github.com/skypies/occurrencedb/cenipa"
	"github.com/skypies/occurrencedb/report"
)

var(
	ctx = context.Background()
	fDir string
	fBucket string
	fEncoding string
	fCoords bool
	fRep string
	fTopN int
	fArea string
	fList bool
	fListReports bool
)

func init() {
	flag.StringVar(&fDir, "dir", "data", "directory (or bucket prefix) holding the CENIPA files")
	flag.StringVar(&fBucket, "bucket", "", "GCS bucket to load from instead of the local disk")
	flag.StringVar(&fEncoding, "encoding", "windows-1252", "text encoding of the source files")
	flag.BoolVar(&fCoords, "coords", false, "clean coordinates and load the state boundaries")
	flag.StringVar(&fRep, "rep", "overview", "which report to run")
	flag.IntVar(&fTopN, "n", 0, "how many groups to emit (0: the report's default)")
	flag.StringVar(&fArea, "area", "", "factor area, for the factornames report")
	flag.BoolVar(&fList, "ls", false, "list the files at the source and exit")
	flag.BoolVar(&fListReports, "reports", false, "list the known reports and exit")
	flag.Parse()
}

func configFromArgs() cenipa.Config {
	cfg := cenipa.DefaultConfig()
	cfg.Dir = fDir
	cfg.Bucket = fBucket
	cfg.Encoding = fEncoding
	cfg.RequireCoordinates = fCoords
	return cfg
}

func listFiles() {
	names,err := cenipa.ListDataFiles(ctx, configFromArgs())
	if err != nil { log.Fatal(err) }
	for _,name := range names {
		fmt.Printf("%s\n", name)
	}
}

func listReports() {
	for _,e := range report.ListReports() {
		fmt.Printf("%-18.18s %s\n", e.Name, e.Description)
	}
}

func runReport() {
	ds,err := cenipa.LoadDataset(ctx, configFromArgs())
	if err != nil { log.Fatal(err) }

	rep,err := report.InstantiateReport(fRep)
	if err != nil { log.Fatal(err) }

	rep.Options.Name = fRep
	rep.Options.TopN = fTopN
	rep.Options.FactorArea = fArea
	if rep.Options.FactorArea == "" { rep.Options.FactorArea = odb.DefaultFactorArea }

	if err := rep.Run(ds); err != nil { log.Fatal(err) }

	if err := rep.OutputAsCSV(os.Stdout); err != nil { log.Fatal(err) }
}

func main() {
	if fList {
		listFiles()
	} else if fListReports {
		listReports()
	} else {
		runReport()
	}
}
