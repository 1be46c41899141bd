package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_URL(t *testing.T) {
	tests := []struct {
		name     string
		route    Route
		base     string
		segments []string
		want     string
		wantErr  bool
	}{
		{name: "base with api prefix", route: RouteUpload, base: "http://localhost:8000/api", want: "http://localhost:8000/api/reports/upload"},
		{name: "trailing slash on base", route: RouteReport, base: "http://localhost:8000/api/", want: "http://localhost:8000/api/report"},
		{name: "bare host", route: RouteDashboard, base: "https://reports.example.org", want: "https://reports.example.org/dashboard"},
		{name: "job id segment", route: RouteJobStatus, base: "http://h/api", segments: []string{"J1"}, want: "http://h/api/job-status/J1"},
		{name: "job id is escaped", route: RouteJobStatus, base: "http://h/api", segments: []string{"a/b c"}, want: "http://h/api/job-status/a%2Fb%20c"},
		{name: "relative base rejected", route: RouteUpload, base: "localhost:8000/api", wantErr: true},
		{name: "empty base rejected", route: RouteUpload, base: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.route.URL(tt.base, tt.segments...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}
