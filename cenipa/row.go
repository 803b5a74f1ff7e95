package cenipa

import(
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// The column headers vary a little between CENIPA dump vintages, so we
// turn each row into a map from header name to value, and let each
// table's cleaner pick out the columns it declares.

type Row map[string]string

type RowReader struct {
	csvreader  *csv.Reader
	headers   []string
	missing    map[string]struct{}
}

func NewRowReader(ioreader io.Reader, cm *charmap.Charmap, missingTokens []string) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(transform.NewReader(ioreader, cm.NewDecoder())),
		missing: map[string]struct{}{},
	}
	rdr.csvreader.Comma = ';'
	rdr.csvreader.FieldsPerRecord = -1  // we do our own arity check, like the header check below

	for _,tok := range missingTokens {
		rdr.missing[tok] = struct{}{}
	}

	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	for i,h := range rdr.headers {
		rdr.headers[i] = strings.TrimSpace(h)
	}

	return &rdr
}

func (r *RowReader)Headers() []string { return r.headers }

// HasColumns verifies the declared schema up front, so a renamed column
// fails at load time instead of at first use.
func (r *RowReader)HasColumns(cols []string) error {
	have := map[string]struct{}{}
	for _,h := range r.headers { have[h] = struct{}{} }

	for _,c := range cols {
		if _,exists := have[c]; !exists {
			return fmt.Errorf("declared column '%s' not in header %v", c, r.headers)
		}
	}
	return nil
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i,_ := range vals {
		val := strings.TrimSpace(vals[i])

		// The charmap decoders map bytes they can't represent to the
		// replacement rune rather than erroring; surface that as a
		// decode failure for the whole file.
		if strings.ContainsRune(val, utf8.RuneError) {
			return m, ErrUndecodable
		}

		if _,isMissing := r.missing[val]; isMissing { val = "" }
		m[r.headers[i]] = val
	}

	return m,nil
}

// }}}

// ReadAll slurps the remaining rows; held briefly during load, then
// discarded once the cleaners have typed them.
func (r *RowReader)ReadAll() ([]Row, error) {
	rows := []Row{}
	for {
		row,err := r.Read()
		if err == io.EOF { break }
		if err != nil { return nil, err }
		rows = append(rows, row)
	}
	return rows, nil
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
