package javascript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/earlyerrors"
	"github.com/kiteco/esparse/kite-go/lang/javascript/parser"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
	"github.com/kiteco/esparse/kite-golib/errors"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/kiteco/esparse/kite-golib/kitelog"
	"github.com/kiteco/esparse/kite-golib/status"
)

const (
	// DefaultTimeout bounds the work done for a single request.
	DefaultTimeout = 5 * time.Second
	// MaxSourceSize is the largest request body accepted.
	MaxSourceSize = 8 << 20
)

// Request is the body of every endpoint.
type Request struct {
	Source    string `json:"source"`
	Module    bool   `json:"module"`
	Locations bool   `json:"locations"`
}

// ErrorResponse is returned with a 4xx or 5xx status code.
type ErrorResponse struct {
	Error       string              `json:"error"`
	SyntaxError *parser.SyntaxError `json:"syntax_error,omitempty"`
}

// EarlyError is an early error with the position of the offending node.
type EarlyError struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

// ValidateResponse lists the early errors of a program, empty when it is valid.
type ValidateResponse struct {
	Valid  bool         `json:"valid"`
	Errors []EarlyError `json:"errors"`
}

// Token is a token along with its kind name and source text.
type Token struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Endpoint serves parsing, early error validation and tokenization over HTTP.
type Endpoint struct {
	timeout time.Duration
	logger  *kitelog.Logger
	router  *mux.Router
}

// NewEndpoint creates an endpoint that gives up on a request after timeout.
func NewEndpoint(timeout time.Duration) *Endpoint {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	e := &Endpoint{
		timeout: timeout,
		logger:  kitelog.Basic,
		router:  mux.NewRouter(),
	}

	e.router.HandleFunc("/parse", status.Instrument(e.handleParse, parseStatusCode, parseLatency)).Methods("POST")
	e.router.HandleFunc("/validate", status.Instrument(e.handleValidate, validateStatusCode, validateLatency)).Methods("POST")
	e.router.HandleFunc("/tokens", status.Instrument(e.handleTokens, tokensStatusCode, tokensLatency)).Methods("POST")

	return e
}

// WithLogger sets the logger for failed requests.
func (e *Endpoint) WithLogger(l *kitelog.Logger) *Endpoint {
	e.logger = l
	return e
}

// ServeHTTP implements http.Handler
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.router.ServeHTTP(w, r)
}

// Router returns the router so that the endpoints can be mounted under a prefix.
func (e *Endpoint) Router() *mux.Router {
	return e.router
}

func (e *Endpoint) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := e.readRequest(w, r)
	if !ok {
		return
	}

	var res *parser.Result
	err := e.run(r, func(ctx kitectx.Context) error {
		var err error
		res, err = parser.Parse(ctx, []byte(req.Source), parser.Options{
			Module:    req.Module,
			Locations: req.Locations,
			UseCache:  true,
		})
		return err
	})
	if err != nil {
		e.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if req.Locations {
		ast.PrintPositions(res.Program, &buf, "  ")
	} else {
		ast.Print(res.Program, &buf, "  ")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}

func (e *Endpoint) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := e.readRequest(w, r)
	if !ok {
		return
	}

	var errs []*earlyerrors.EarlyError
	err := e.run(r, func(ctx kitectx.Context) error {
		res, err := parser.Parse(ctx, []byte(req.Source), parser.Options{
			Module:    req.Module,
			Locations: true,
			UseCache:  true,
		})
		if err != nil {
			return err
		}
		errs = earlyerrors.Validate(res.Program)
		return nil
	})
	if err != nil {
		e.writeError(w, r, err)
		return
	}

	resp := ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: []EarlyError{},
	}
	for _, ee := range errs {
		start := ee.Node.Span().Start
		resp.Errors = append(resp.Errors, EarlyError{
			Message: ee.Message,
			Line:    start.Line,
			Column:  start.Column,
			Offset:  start.Offset,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *Endpoint) handleTokens(w http.ResponseWriter, r *http.Request) {
	req, ok := e.readRequest(w, r)
	if !ok {
		return
	}

	src := scanner.EncodeSource(req.Source)
	var toks []scanner.Token
	err := e.run(r, func(ctx kitectx.Context) error {
		var err error
		toks, err = scanner.Tokenize(ctx, src, req.Module)
		return err
	})
	if err != nil {
		e.writeError(w, r, err)
		return
	}

	resp := make([]Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == scanner.EOS {
			break
		}
		resp = append(resp, Token{
			Kind:  tok.Kind.String(),
			Start: tok.Start,
			End:   tok.End,
			Text:  tok.Text(src),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// --

func (e *Endpoint) readRequest(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	body := http.MaxBytesReader(w, r.Body, MaxSourceSize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		msg := fmt.Sprintf("error decoding request: %v", err)
		if r.ContentLength > MaxSourceSize {
			msg = fmt.Sprintf("request of %s exceeds the %s limit",
				humanize.Bytes(uint64(r.ContentLength)), humanize.Bytes(MaxSourceSize))
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
		return req, false
	}
	sourceBytes.Add(int64(len(req.Source)))
	return req, true
}

// run calls f with a context that expires with the request or after the endpoint timeout.
func (e *Endpoint) run(r *http.Request, f func(kitectx.Context) error) error {
	return kitectx.FromContext(r.Context(), func(ctx kitectx.Context) error {
		return ctx.WithLogger(e.logger).WithTimeout(e.timeout, f)
	})
}

func (e *Endpoint) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch cause := errors.Cause(err).(type) {
	case *parser.SyntaxError:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: cause.Error(), SyntaxError: cause})
		return
	case kitectx.ContextExpiredError:
		expiredRequests.Add(1)
		e.logger.Printf("%s: %v", r.URL.Path, err)
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: cause.Error()})
		return
	}

	err = errors.Wrapf(err, "%s", r.URL.Path)
	e.logger.Println(err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
