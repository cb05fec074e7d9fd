// Package httpsource adapts an HTTP response body into the byte source
// jsonstream.Load/LoadMany accept, grounded on
// original_source/src/json_stream/httpx/__init__.py (a thin wrapper
// exposing an httpx.Response's chunk iterator as json_stream's expected
// byte-iterable) and requests/__init__.py's streaming decode_unicode
// handling for the declared-charset case spec.md §4.1 calls out.
package httpsource

import (
	"mime"
	"net/http"

	jsonstream "github.com/streampkg/jsonstream"
)

// Response wraps an *http.Response so it satisfies jsonstream's
// CharsetDeclarer (via its Content-Type header) in addition to being a
// plain io.Reader over the body. It does not buffer the body: Load pulls
// bytes from it exactly as fast as the tokenizer consumes them, so a
// response can be parsed while it's still arriving off the wire.
type Response struct {
	*http.Response
}

// New wraps resp for direct use as a jsonstream.Load/LoadMany source.
// Callers remain responsible for resp.Body.Close().
func New(resp *http.Response) Response {
	return Response{Response: resp}
}

// Read satisfies io.Reader by delegating to the response body.
func (r Response) Read(p []byte) (int, error) {
	return r.Body.Read(p)
}

// DeclaredCharset implements jsonstream.CharsetDeclarer by parsing the
// response's Content-Type header, e.g. "application/json; charset=utf-8".
func (r Response) DeclaredCharset() (string, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", false
	}
	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", false
	}
	cs, ok := params["charset"]
	return cs, ok
}

// GzipMode reports the jsonstream.GzipMode implied by the response's
// Content-Encoding header: GzipAuto when it still says "gzip" (as with an
// http.Transport that has DisableCompression set), GzipNever otherwise.
// net/http's default transport removes that header when it decompresses
// the body itself, so with a default client this returns GzipNever.
func GzipMode(resp *http.Response) jsonstream.GzipMode {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		return jsonstream.GzipAuto
	}
	return jsonstream.GzipNever
}

// Get issues an HTTP GET and returns a Response ready to pass to
// jsonstream.Load. The caller must close the response body
// (resp.Body.Close()) when done.
func Get(client *http.Client, url string) (Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return Response{}, err
	}
	return New(resp), nil
}
