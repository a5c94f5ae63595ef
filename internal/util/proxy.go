package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc builds the proxy selector for the LLM HTTP client. Explicit
// proxy URLs win over the HTTP(S)_PROXY environment variables; with no
// explicit URLs the environment decides.
func NewProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
