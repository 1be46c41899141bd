package client

import (
	"fmt"
	"net/url"
	"strings"
)

// Route is an API path relative to the configured base URL.
type Route string

const (
	RouteUpload    Route = "reports/upload"
	RouteJobStatus Route = "job-status"
	RouteReport    Route = "report"
	RouteDashboard Route = "dashboard"
)

// URL appends the route and the escaped extra path segments to baseURL, which
// may itself carry a path prefix such as "/api".
func (r Route) URL(baseURL string, segments ...string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	elems := []string{string(r)}
	for _, s := range segments {
		elems = append(elems, url.PathEscape(s))
	}
	return u.JoinPath(elems...), nil
}
