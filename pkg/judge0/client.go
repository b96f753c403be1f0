package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"

	"judge0-go/pkg/debug"
)

// defaultFields is the field projection used when the caller passes an
// empty fields argument to a submission read or delete.
const defaultFields = "*"

// Client performs HTTP requests against a Judge0-compatible service.
//
// A Client is immutable after construction: it keeps its own copy of the
// Config, so it is safe for concurrent use from any number of
// goroutines without locking. This layer defines no timeout or retry
// policy; pass a context with a deadline if you need one, and note that
// Wait=true accepts unbounded latency by design.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cfg        Config
}

// NewClient creates a Client for the service at baseURL. A trailing
// slash on baseURL is trimmed; endpoint paths are appended verbatim.
func NewClient(baseURL string, cfg Config) *Client {
	return NewClientWithTransport(baseURL, cfg, nil)
}

// NewClientWithTransport is NewClient with an explicit transport, e.g.
// an instrumented RoundTripper. A nil transport means
// http.DefaultTransport.
func NewClientWithTransport(baseURL string, cfg Config, transport http.RoundTripper) *Client {
	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cfg:        cfg,
	}
}

// Config returns the configuration snapshot this Client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Authenticate checks the configured authentication token against
// POST /authenticate. A nil error means the service accepted it.
//
// This is one of the two operations with no decodable body, so it is
// also one of the two that inspect the HTTP status code.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/authenticate", nil, nil, nil)
}

// Authorize checks the configured authorization token against
// POST /authorize. A nil error means the service accepted it.
func (c *Client) Authorize(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/authorize", nil, nil, nil)
}

// Languages returns the active languages.
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	var langs []Language
	if err := c.do(ctx, http.MethodGet, "/languages", nil, nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// AllLanguages returns every language, archived ones included.
func (c *Client) AllLanguages(ctx context.Context) ([]Language, error) {
	var langs []Language
	if err := c.do(ctx, http.MethodGet, "/languages/all", nil, nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// Language returns a single active language by id. An unknown id is a
// service-side 404, which surfaces as a request failure because the
// body does not decode into a Language.
func (c *Client) Language(ctx context.Context, id int) (Language, error) {
	var lang Language
	path := fmt.Sprintf("/languages/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &lang); err != nil {
		return Language{}, err
	}
	return lang, nil
}

// Statuses returns the service's execution status catalog.
func (c *Client) Statuses(ctx context.Context) ([]Status, error) {
	var statuses []Status
	if err := c.do(ctx, http.MethodGet, "/statuses", nil, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// About returns the service's version and maintainer metadata.
func (c *Client) About(ctx context.Context) (About, error) {
	var about About
	if err := c.do(ctx, http.MethodGet, "/about", nil, nil, &about); err != nil {
		return About{}, err
	}
	return about, nil
}

// Workers returns a load snapshot of the execution queues.
func (c *Client) Workers(ctx context.Context) ([]Worker, error) {
	var workers []Worker
	if err := c.do(ctx, http.MethodGet, "/workers", nil, nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// CreateSubmission submits sub for execution, echoing the configured
// base64_encoded and wait flags.
//
// The result is left as an open JSON value on purpose: with Wait unset
// the service returns a bare {"token": "..."}; with Wait set it returns
// the full submission once execution finishes; and validation failures
// come back as error-shaped bodies (for example
// {"language_id": ["doesn't exist"]}) with a 4xx status. All of these
// are data, not client errors — inspect the returned value.
func (c *Client) CreateSubmission(ctx context.Context, sub Submission) (json.RawMessage, error) {
	query := []queryParam{
		{"base64_encoded", strconv.FormatBool(c.cfg.Base64Encoded)},
		{"wait", strconv.FormatBool(c.cfg.Wait)},
	}
	var result json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/submissions", query, sub, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSubmission reads the submission identified by token, projected to
// the requested fields. An empty fields argument means "*" (all).
func (c *Client) GetSubmission(ctx context.Context, token, fields string) (Submission, error) {
	if fields == "" {
		fields = defaultFields
	}
	query := []queryParam{
		{"base64_encoded", strconv.FormatBool(c.cfg.Base64Encoded)},
		{"wait", strconv.FormatBool(c.cfg.Wait)},
		{"fields", fields},
	}
	var sub Submission
	if err := c.do(ctx, http.MethodGet, "/submissions/"+token, query, nil, &sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// DeleteSubmission removes the submission on the service and returns
// its final snapshot, projected to the requested fields. An empty
// fields argument means "*". The client keeps no local state to clean
// up; the service is authoritative.
func (c *Client) DeleteSubmission(ctx context.Context, token, fields string) (Submission, error) {
	if fields == "" {
		fields = defaultFields
	}
	query := []queryParam{{"fields", fields}}
	var sub Submission
	if err := c.do(ctx, http.MethodDelete, "/submissions/"+token, query, nil, &sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// CreateBatch submits several submissions in one call. The result holds
// one open JSON value per input submission, in input order: a token
// object for each accepted one and an error-shaped body for each
// rejected one, exactly as the service reported them.
func (c *Client) CreateBatch(ctx context.Context, subs []Submission) ([]json.RawMessage, error) {
	query := []queryParam{
		{"base64_encoded", strconv.FormatBool(c.cfg.Base64Encoded)},
	}
	body := batchRequest{Submissions: subs}
	var results []json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/submissions/batch", query, body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetBatch reads several submissions in one call. Tokens are joined
// with literal commas, as the service expects. The returned slice keeps
// the service's order, which corresponds to the tokens parameter; the
// client does not re-sort. An empty fields argument means "*".
func (c *Client) GetBatch(ctx context.Context, tokens []string, fields string) ([]Submission, error) {
	if fields == "" {
		fields = defaultFields
	}
	query := []queryParam{
		{"tokens", strings.Join(tokens, ",")},
		{"base64_encoded", strconv.FormatBool(c.cfg.Base64Encoded)},
		{"fields", fields},
	}
	var resp batchResponse
	if err := c.do(ctx, http.MethodGet, "/submissions/batch", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Submissions, nil
}

// batchRequest and batchResponse are the wire envelopes of the batch
// endpoints: submissions go out and come back wrapped in a
// "submissions" object, while batch-create results are a bare array.
type batchRequest struct {
	Submissions []Submission `json:"submissions"`
}

type batchResponse struct {
	Submissions []Submission `json:"submissions"`
}

// headers builds the header set for one request from the Config.
// Configured names and values are validated here so that a malformed
// header aborts the operation before any network I/O.
func (c *Client) headers() (http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.cfg.AuthenticationToken != "" {
		if err := setHeader(h, c.cfg.AuthenticationHeaderName, c.cfg.AuthenticationToken); err != nil {
			return nil, err
		}
	}
	if c.cfg.AuthorizationToken != "" {
		if err := setHeader(h, c.cfg.AuthorizationHeaderName, c.cfg.AuthorizationToken); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func setHeader(h http.Header, name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return NewInvalidHeaderNameError(name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return NewInvalidHeaderValueError(value)
	}
	h.Set(name, value)
	return nil
}

// queryParam is one key=value pair. The query string is assembled by
// plain concatenation in declaration order, with no percent-encoding:
// the service expects literal commas in tokens and a literal "*" in
// fields, and every value this client emits is URL-safe.
type queryParam struct {
	key   string
	value string
}

func buildQuery(params []queryParam) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}

// rawResult reports whether out receives the response body verbatim
// rather than a typed value. Open results keep the errors-are-data
// behavior: whatever the service sent, including validation failures
// with a 4xx status, is handed to the caller as a result.
func rawResult(out any) bool {
	switch out.(type) {
	case *json.RawMessage, *[]json.RawMessage:
		return true
	}
	return false
}

// do performs one request/response exchange.
//
// body, when non-nil, is JSON-encoded as the request body. out, when
// non-nil, receives the decoded response body; a nil out means the
// operation has no decodable result and success is a 2xx status.
//
// For open results (see rawResult) the status code is deliberately
// ignored. Typed results exist only on reads, where a non-2xx means
// the entity does not exist: a 404 body would otherwise decode into a
// zero value and masquerade as success, so those map to a request
// failure. A 2xx body that does not match the declared shape is a
// serialization failure.
func (c *Client) do(ctx context.Context, method, path string, query []queryParam, body, out any) error {
	hdr, err := c.headers()
	if err != nil {
		return err
	}

	url := c.baseURL + path + buildQuery(query)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return NewSerializationError(err)
		}
		if debug.TraceIsEnabled("wire") {
			debug.Trace("wire", "request body", "method", method, "url", url, "body", string(data))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return NewRequestError(err)
	}
	req.Header = hdr

	debug.Log("client", "dispatching request", "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewRequestError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewRequestError(err)
	}

	debug.Log("client", "received response", "method", method, "url", url, "status", resp.StatusCode)
	if debug.TraceIsEnabled("wire") {
		debug.Trace("wire", "response body", "url", url, "body", string(data))
	}

	if out == nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return NewRequestErrorf("service rejected request (HTTP %d)", resp.StatusCode)
		}
		return nil
	}

	if !rawResult(out) && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return NewRequestErrorf("service returned HTTP %d for %s %s", resp.StatusCode, method, path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewSerializationError(err)
	}
	return nil
}
