package cenipa

import(
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// A source hands out readers for the fixed input files. Two exist: a
// local directory (the default) and a GCS bucket holding the same
// layout. Identical bytes yield identical datasets either way.

type source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context) ([]string, error)
}

func newSource(ctx context.Context, cfg Config) (source, error) {
	if cfg.Bucket != "" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("GCS-Client [gs://%s]: %v", cfg.Bucket, err)
		}
		return gcsSource{client:client, bucket:cfg.Bucket, prefix:cfg.Dir}, nil
	}
	return dirSource{dir:cfg.Dir}, nil
}

// {{{ dirSource

type dirSource struct {
	dir  string
}

func (s dirSource)Open(ctx context.Context, name string) (io.ReadCloser, error) {
	fullpath := filepath.Join(s.dir, name)
	f,err := os.Open(fullpath)
	if os.IsNotExist(err) {
		return nil, MissingFileError{Path:fullpath}
	} else if err != nil {
		return nil, LoadError{Path:fullpath, Err:err}
	}
	return f, nil
}

func (s dirSource)List(ctx context.Context) ([]string, error) {
	entries,err := os.ReadDir(s.dir)
	if err != nil { return nil, err }

	names := []string{}
	for _,e := range entries {
		if e.IsDir() { continue }
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// }}}
// {{{ gcsSource

type gcsSource struct {
	client  *storage.Client
	bucket  string
	prefix  string
}

func (s gcsSource)Open(ctx context.Context, name string) (io.ReadCloser, error) {
	objName := path.Join(s.prefix, name)
	rdr,err := s.client.Bucket(s.bucket).Object(objName).NewReader(ctx)
	if err == storage.ErrObjectNotExist {
		return nil, MissingFileError{Path:fmt.Sprintf("gs://%s/%s", s.bucket, objName)}
	} else if err != nil {
		return nil, LoadError{
			Path: fmt.Sprintf("gs://%s/%s", s.bucket, objName),
			Err: fmt.Errorf("GCS-Open: %v", err),
		}
	}
	return rdr, nil
}

func (s gcsSource)List(ctx context.Context) ([]string, error) {
	names := []string{}

	q := &storage.Query{Prefix: s.prefix}
	it := s.client.Bucket(s.bucket).Objects(ctx, q)
	for {
		attrs,err := it.Next()
		if err == iterator.Done { break }
		if err != nil {
			return nil, fmt.Errorf("GCS-Readdir [gs://%s]%s: %v", s.bucket, s.prefix, err)
		}
		names = append(names, path.Base(attrs.Name))
	}
	sort.Strings(names)
	return names, nil
}

// }}}

// ListDataFiles names the files present at the configured source; handy
// for eyeballing a bucket before pointing the loader at it.
func ListDataFiles(ctx context.Context, cfg Config) ([]string, error) {
	src,err := newSource(ctx, cfg)
	if err != nil { return nil, err }
	return src.List(ctx)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
