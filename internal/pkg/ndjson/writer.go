// Package ndjson writes newline-delimited JSON to an http.ResponseWriter,
// flushing after every record so each one reaches the client as soon as it
// is produced.
package ndjson

import (
	"encoding/json"
	"io"
	"net/http"
)

const ContentType = "application/x-ndjson"

type Writer struct {
	enc     *json.Encoder
	flusher http.Flusher
}

// NewWriter wraps w. If w supports http.Flusher each record is flushed as it
// is written; otherwise records are only buffered, which is what the
// httptest recorder does.
func NewWriter(w io.Writer) *Writer {
	nw := &Writer{enc: json.NewEncoder(w)}
	if f, ok := w.(http.Flusher); ok {
		nw.flusher = f
	}
	return nw
}

// Write encodes v as a single JSON line and flushes it downstream.
func (w *Writer) Write(v any) error {
	// json.Encoder terminates every value with a newline.
	if err := w.enc.Encode(v); err != nil {
		return err
	}
	if w.flusher != nil {
		w.flusher.Flush()
	}
	return nil
}
