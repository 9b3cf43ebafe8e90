// Package proxyfwd forwards requests verbatim to the sibling HTTP service
// that backs /intro and /findname (spec.md §6's "Proxy target").
package proxyfwd

import (
	"io"
	"net/http"
	"strings"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
)

// Forwarder proxies requests to a fixed base URL, preserving method,
// path+query, headers (excluding Content-Length), and body bytes.
type Forwarder struct {
	client  *http.Client
	baseURL string
}

// New builds a Forwarder targeting baseURL.
func New(baseURL string, client *http.Client) *Forwarder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Forwarder{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Forward sends r's method/path/query/headers/body to the target and
// writes the target's response back to w verbatim. Returns an Upstream
// apperr.Error on any outbound failure.
func (f *Forwarder) Forward(w http.ResponseWriter, r *http.Request) error {
	target := f.baseURL + r.URL.RequestURI()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return apperr.Internalf("reading request body: %v", err)
	}

	outReq, err := http.NewRequestWithContext(r.Context(), r.Method, target, strings.NewReader(string(body)))
	if err != nil {
		return apperr.Internalf("building proxy request: %v", err)
	}

	for name, values := range r.Header {
		if strings.EqualFold(name, "content-length") {
			continue
		}
		for _, v := range values {
			outReq.Header.Add(name, v)
		}
	}

	resp, err := f.client.Do(outReq)
	if err != nil {
		return apperr.Upstreamf("proxy request failed: %v", err)
	}
	defer resp.Body.Close()

	for name, values := range resp.Header {
		if strings.EqualFold(name, "content-length") {
			continue
		}
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		return apperr.Upstreamf("copying proxy response: %v", err)
	}

	return nil
}
