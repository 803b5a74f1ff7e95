package ui

import(
	"net/http"

	"github.com/skypies/util/handlerware"

	odb "github.com/skypies/occurrencedb"
)

// Rather than stash/retrieve the dataset from the context, we just pass
// it directly to a new handler type, that we use throughout ui/. The
// dataset is immutable, so sharing one snapshot (and one result cache)
// across all requests is safe.
type DatasetHandler func(*odb.Dataset, *odb.ResultCache, http.ResponseWriter, *http.Request)

func WithDataset(ds *odb.Dataset, cache *odb.ResultCache, dh DatasetHandler) handlerware.BaseHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		dh(ds, cache, w, r)
	}
}
