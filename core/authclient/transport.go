package authclient

import "net/http"

// Transport is an http.RoundTripper that injects the current auth headers
// into every outgoing request. Wrap it around the default transport for
// clients talking to authenticated endpoints:
//
//	httpClient := &http.Client{
//		Transport: authclient.NewTransport(client, nil),
//	}
type Transport struct {
	client *Client
	base   http.RoundTripper
}

// NewTransport creates a transport reading tokens through the given auth
// client. A nil base falls back to http.DefaultTransport.
func NewTransport(client *Client, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{client: client, base: base}
}

// RoundTrip implements http.RoundTripper. Headers are read fresh from the
// credential store on every request, so token changes apply immediately.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	headers, err := t.client.AuthHeaders(req.Context())
	if err != nil {
		return nil, err
	}

	// Per RoundTripper contract the request must not be mutated.
	clone := req.Clone(req.Context())
	for name, values := range headers {
		for _, v := range values {
			clone.Header.Set(name, v)
		}
	}

	return t.base.RoundTrip(clone)
}
