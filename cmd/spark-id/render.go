package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

// renderIDs writes generated ids in the requested format: one per line
// (text), a JSON array (json), or index,id rows under a header (csv).
func renderIDs(w io.Writer, ids []string, format string) error {
	switch format {
	case formatText:
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}
		return nil
	case formatJSON:
		return renderJSON(w, ids)
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"index", "id"}); err != nil {
			return err
		}
		for i, id := range ids {
			if err := cw.Write([]string{strconv.Itoa(i), id}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown format %q (want text, json or csv)", format)
	}
}

// renderJSON writes v as indented JSON with a trailing newline.
func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
