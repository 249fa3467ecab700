// Package pdftables is a client for the PDFTables document conversion
// service. It uploads a PDF and downloads the converted result as CSV,
// HTML, XML or XLSX.
package pdftables

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the production endpoint of the conversion service.
	DefaultAPIURL = "https://pdftables.com/api"

	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout bounds a whole conversion request.
	DefaultReadTimeout = 300 * time.Second
)

// Client issues conversion requests against the service. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	apiKey         string
	apiURL         string
	extractor      Extractor
	extract        ExtractMode
	connectTimeout time.Duration
	readTimeout    time.Duration
	httpClient     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the service endpoint.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = apiURL
	}
}

// WithTimeouts sets the connect and read timeouts. The read timeout
// bounds the whole request, including the response body download.
func WithTimeouts(connect, read time.Duration) Option {
	return func(c *Client) {
		c.connectTimeout = connect
		c.readTimeout = read
	}
}

// WithExtractor selects a backend extraction algorithm and, for the AI
// extractors, an optional extract mode.
func WithExtractor(extractor Extractor, extract ExtractMode) Option {
	return func(c *Client) {
		c.extractor = extractor
		c.extract = extract
	}
}

// WithHTTPClient replaces the underlying HTTP client. The connect
// timeout option has no effect when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a Client for the given API key. The extractor/extract
// combination is validated here rather than at call time.
func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey:         apiKey,
		apiURL:         DefaultAPIURL,
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := validateExtraction(c.extractor, c.extract); err != nil {
		return nil, err
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: c.connectTimeout,
				}).DialContext,
			},
		}
	}

	return c, nil
}

// Convert converts the PDF at pdfPath.
//
// With an empty outPath the converted document is returned in memory;
// text formats (csv, html, xml) are UTF-8 and safe to string(). With a
// non-empty outPath the response is streamed into the file (the path is
// first corrected by ResolveOutput, so the written file may carry an
// appended extension) and the returned slice is nil. Gzip response
// bodies are decompressed by the transport before they reach the file.
//
// The output file is only created after a successful response, so a
// failed conversion never leaves a partial file behind.
func (c *Client) Convert(ctx context.Context, pdfPath, outPath string, format Format, opts ...RequestOption) ([]byte, error) {
	outPath, format, err := ResolveOutput(outPath, format)
	if err != nil {
		return nil, err
	}

	pdf, err := os.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer pdf.Close()

	resp, err := c.Request(ctx, pdf, format, opts...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if outPath == "" {
		return io.ReadAll(resp.Body)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(outPath)
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil, out.Close()
}

// Dump converts the PDF read from pdf and returns the response body as a
// single-pass sequence of chunks. See Chunks.
func (c *Client) Dump(ctx context.Context, pdf io.Reader, format Format, opts ...RequestOption) (*Chunks, error) {
	resp, err := c.Request(ctx, pdf, format, opts...)
	if err != nil {
		return nil, err
	}
	return &Chunks{body: resp.Body}, nil
}

// Request uploads the PDF read from pdf and returns the raw response
// after status classification. The response body streams; the caller
// must close it.
func (c *Client) Request(ctx context.Context, pdf io.Reader, format Format, opts ...RequestOption) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, &APIError{Message: "Invalid API key"}
	}

	_, format, err := ResolveOutput("", format)
	if err != nil {
		return nil, err
	}

	ro := c.newRequestOptions(opts)

	query := ro.query
	query.Set("key", c.apiKey)
	query.Set("format", string(format))
	if c.extractor != "" {
		query.Set("extractor", string(c.extractor))
		if c.extract != "" {
			query.Set("extract", string(c.extract))
		}
	}

	body, contentType := multipartUpload(pdf)

	tctx, cancel := context.WithTimeout(ctx, ro.timeout)
	req, err := http.NewRequestWithContext(tctx, http.MethodPost, c.apiURL+"?"+query.Encode(), body)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if err := classifyStatus(resp); err != nil {
		resp.Body.Close()
		cancel()
		return nil, err
	}

	// The deadline must outlive this call while the body streams; tie
	// its release to the body's Close.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// Remaining reports the remaining pages quota for the API key.
func (c *Client) Remaining(ctx context.Context, opts ...RequestOption) (int, error) {
	if c.apiKey == "" {
		return 0, &APIError{Message: "Invalid API key"}
	}

	ro := c.newRequestOptions(opts)
	query := ro.query
	query.Set("key", c.apiKey)

	tctx, cancel := context.WithTimeout(ctx, ro.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tctx, http.MethodGet, c.apiURL+"/remaining?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return 0, &APIError{Message: "Unauthorized API key"}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, fmt.Errorf("parsing remaining quota %q: %w", body, err)
	}
	return n, nil
}

// multipartUpload wraps pdf in a streaming multipart body with the
// single file field the service expects.
func multipartUpload(pdf io.Reader) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("f", "file.pdf")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, pdf); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	return pr, mw.FormDataContentType()
}

// cancelOnClose releases a request deadline when the response body is
// closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// requestOptions carries per-call overrides for a single request.
type requestOptions struct {
	timeout time.Duration
	query   url.Values
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// WithQueryParam adds an extra query parameter to the request. The
// reserved parameters (key, format, extractor, extract) cannot be
// overridden.
func WithQueryParam(key, value string) RequestOption {
	return func(ro *requestOptions) {
		ro.query.Set(key, value)
	}
}

// WithRequestTimeout overrides the client's read timeout for this call.
func WithRequestTimeout(d time.Duration) RequestOption {
	return func(ro *requestOptions) {
		ro.timeout = d
	}
}

func (c *Client) newRequestOptions(opts []RequestOption) *requestOptions {
	ro := &requestOptions{
		timeout: c.readTimeout,
		query:   url.Values{},
	}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}
