package main

// Publishes the cleaned occurrence table to BigQuery: write the rows as
// newline-delimited JSON into a GCS staging object, then submit a load
// job referencing it.
//
//   bqpublish -dir=./data -stagebucket=my-staging -project=my-project

import(
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"

	odb "github.com/skypies/occurrencedb"
	"github.com/skypies/occurrencedb/cenipa"
)

var(
	ctx = context.Background()
	fDir string
	fBucket string
	fEncoding string
	fStageBucket string
	fStageFolder string
	fProject string
	fDataset string
	fTable string
	fSkipLoad bool
)

func init() {
	flag.StringVar(&fDir, "dir", "data", "directory (or bucket prefix) holding the CENIPA files")
	flag.StringVar(&fBucket, "bucket", "", "GCS bucket to load from instead of the local disk")
	flag.StringVar(&fEncoding, "encoding", "windows-1252", "text encoding of the source files")
	flag.StringVar(&fStageBucket, "stagebucket", "", "GCS bucket for the staging file")
	flag.StringVar(&fStageFolder, "stagefolder", "bigquery-occurrences", "folder in the staging bucket")
	flag.StringVar(&fProject, "project", "", "google cloud project owning the bigquery dataset")
	flag.StringVar(&fDataset, "dataset", "public", "bigquery dataset name")
	flag.StringVar(&fTable, "table", "occurrences", "bigquery table name")
	flag.BoolVar(&fSkipLoad, "skipload", false, "write the staging file but skip the load job")
	flag.Parse()
}

func main() {
	if fStageBucket == "" { log.Fatal("need -stagebucket") }
	if !fSkipLoad && fProject == "" { log.Fatal("need -project (or -skipload)") }

	cfg := cenipa.DefaultConfig()
	cfg.Dir = fDir
	cfg.Bucket = fBucket
	cfg.Encoding = fEncoding

	ds,err := cenipa.LoadDataset(ctx, cfg)
	if err != nil { log.Fatal(err) }
	log.Printf("loaded %s", ds)

	filename := fmt.Sprintf("occurrences-%s.json", ds.Signature())
	n,err := writeOccurrencesGCSFile(ds, fStageFolder, filename)
	if err != nil { log.Fatal(err) }

	if n == 0 {
		log.Printf("gs://%s/%s/%s already exists, nothing written", fStageBucket, fStageFolder, filename)
	} else {
		log.Printf("%d occurrences written to gs://%s/%s/%s", n, fStageBucket, fStageFolder, filename)
	}

	if fSkipLoad { return }

	if err := submitLoadJob(fStageFolder, filename); err != nil {
		log.Fatal("submitLoadJob failed: ", err)
	}
}

// {{{ writeOccurrencesGCSFile

// Returns the number of records written (which is zero if the file
// already exists; the filename embeds the dataset signature, so an
// existing file already holds exactly these rows).
func writeOccurrencesGCSFile(ds *odb.Dataset, foldername, filename string) (int, error) {
	client,err := storage.NewClient(ctx)
	if err != nil { return 0, err }
	defer client.Close()

	obj := client.Bucket(fStageBucket).Object(foldername + "/" + filename)

	if _,err := obj.Attrs(ctx); err == nil {
		return 0, nil
	} else if err != storage.ErrObjectNotExist {
		return 0, err
	}

	writer := obj.NewWriter(ctx)
	writer.ContentType = "application/json"
	encoder := json.NewEncoder(writer)

	n := 0
	for _,o := range ds.Occurrences {
		if err := encoder.Encode(o.ForBigQuery()); err != nil {
			writer.Close()
			return 0, err
		}
		n++
	}

	if err := writer.Close(); err != nil { return 0, err }

	return n, nil
}

// }}}
// {{{ submitLoadJob

// https://cloud.google.com/bigquery/docs/loading-data-cloud-storage#bigquery-import-gcs-file-go
func submitLoadJob(gcsfolder, gcsfile string) error {
	client,err := bigquery.NewClient(ctx, fProject)
	if err != nil {
		return fmt.Errorf("Creating bigquery client: %v", err)
	}
	destTable := client.Dataset(fDataset).Table(fTable)

	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s/%s", fStageBucket, gcsfolder, gcsfile))
	gcsSrc.SourceFormat = bigquery.JSON

	loader := destTable.LoaderFrom(gcsSrc)
	job,err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("Submission of load job: %v", err)
	}

	time.Sleep(5 * time.Second)

	if status,err := job.Status(ctx); err != nil {
		return fmt.Errorf("Failure determining status: %v", err)
	} else if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i,innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		return fmt.Errorf("Job error: %v\n--\n%s", err, detailedErrStr)
	} else {
		log.Printf("BiqQuery LoadJob status: done=%v, state=%v", status.Done(), status.State)
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
