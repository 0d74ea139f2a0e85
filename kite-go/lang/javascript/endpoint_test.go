package javascript

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kiteco/esparse/kite-golib/kitelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, e *Endpoint, path string, req Request) *httptest.ResponseRecorder {
	buf, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("POST", path, bytes.NewReader(buf)))
	return rec
}

func newTestEndpoint() *Endpoint {
	return NewEndpoint(DefaultTimeout).WithLogger(kitelog.Discard)
}

func TestEndpoint_Parse(t *testing.T) {
	e := newTestEndpoint()

	rec := post(t, e, "/parse", Request{Source: "a = 1;"})
	require.Equal(t, http.StatusOK, rec.Code)
	expected := `Script
  ExpressionStatement
    AssignmentExpression
      AssignmentTargetIdentifier[a]
      LiteralNumericExpression[1]
`
	assert.Equal(t, expected, rec.Body.String())

	rec = post(t, e, "/parse", Request{Source: "x;", Locations: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Script[0...2]\n"), rec.Body.String())
}

func TestEndpoint_ParseSyntaxError(t *testing.T) {
	e := newTestEndpoint()

	rec := post(t, e, "/parse", Request{Source: "a +;"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.SyntaxError)
	assert.Equal(t, 1, resp.SyntaxError.Line)
	assert.Equal(t, 3, resp.SyntaxError.Offset)
	assert.NotEmpty(t, resp.Error)
}

func TestEndpoint_ParseModule(t *testing.T) {
	e := newTestEndpoint()

	rec := post(t, e, "/parse", Request{Source: "import a from 'b';", Module: false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, e, "/parse", Request{Source: "import a from 'b';", Module: true})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Module\n"))
}

func TestEndpoint_Validate(t *testing.T) {
	e := newTestEndpoint()

	rec := post(t, e, "/validate", Request{Source: "{ let x; let x; }"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, EarlyError{Message: `Duplicate binding "x"`, Line: 1, Column: 13, Offset: 13}, resp.Errors[0])

	rec = post(t, e, "/validate", Request{Source: "while (true) { break; }"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = ValidateResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)

	rec = post(t, e, "/validate", Request{Source: "/[a-z/"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndpoint_Tokens(t *testing.T) {
	e := newTestEndpoint()

	rec := post(t, e, "/tokens", Request{Source: "a = /b/g;"})
	require.Equal(t, http.StatusOK, rec.Code)

	var toks []Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toks))
	require.Len(t, toks, 4)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "=", toks[1].Text)
	assert.Equal(t, Token{Kind: toks[2].Kind, Start: 4, End: 8, Text: "/b/g"}, toks[2])
	assert.Equal(t, ";", toks[3].Text)
}

func TestEndpoint_BadRequests(t *testing.T) {
	e := newTestEndpoint()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("POST", "/parse", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/parse", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("POST", "/nope", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndpoint_StatusCodes(t *testing.T) {
	e := newTestEndpoint()

	before := tokensStatusCode.Count("200")
	post(t, e, "/tokens", Request{Source: "x"})
	assert.Equal(t, before+1, tokensStatusCode.Count("200"))

	body, err := ioutil.ReadAll(post(t, e, "/tokens", Request{Source: "'unterminated"}).Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "syntax_error")
}
