package status

import (
	"net/http"
	"strconv"
	"time"
)

// RecordStatusCode wraps an HTTP handler and counts each response code in codes.
func RecordStatusCode(wrapped http.HandlerFunc, codes *Breakdown) http.HandlerFunc {
	return Instrument(wrapped, codes, nil)
}

// RecordDuration wraps an HTTP handler and samples how long each request takes.
func RecordDuration(wrapped http.HandlerFunc, latency *SampleDuration) http.HandlerFunc {
	return Instrument(wrapped, nil, latency)
}

// Instrument records both the response code and the latency of every request.
// Either metric may be nil.
func Instrument(wrapped http.HandlerFunc, codes *Breakdown, latency *SampleDuration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if latency != nil {
			defer latency.DeferRecord(time.Now())
		}
		rw := &recordingWriter{ResponseWriter: w}
		wrapped(rw, r)
		if codes == nil {
			return
		}
		code := rw.code
		if code == 0 {
			// nothing written, net/http replies 200
			code = http.StatusOK
		}
		codes.HitAndAdd(strconv.Itoa(code))
	}
}

// recordingWriter remembers the first status code sent.
type recordingWriter struct {
	http.ResponseWriter
	code int
}

func (w *recordingWriter) Write(body []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	return w.ResponseWriter.Write(body)
}

func (w *recordingWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}
