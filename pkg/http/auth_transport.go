package http

import "net/http"

type authTransport struct {
	token      string
	queryParam string
	transport  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())

	if t.queryParam != "" {
		q := reqCopy.URL.Query()
		q.Set(t.queryParam, t.token)
		reqCopy.URL.RawQuery = q.Encode()
	} else {
		reqCopy.Header.Set("Authorization", "Bearer "+t.token)
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sends the token as a bearer Authorization header
func WithAuthToken(token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			token:     token,
			transport: rt,
		}
	})
}

// WithQueryToken sends the token as a URL query parameter (e.g. Google's ?key=)
func WithQueryToken(param, token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			token:      token,
			queryParam: param,
			transport:  rt,
		}
	})
}
