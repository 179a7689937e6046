package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "регистр не важен", header: "bearer xyz", want: "xyz"},
		{name: "без заголовка", header: "", want: ""},
		{name: "другая схема", header: "Basic dXNlcg==", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := BearerToken(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = GetToken(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

type recordedRequest struct {
	method, path, status string
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) RecordHTTPRequest(method, path, status string, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/api/v1/sessions/{sessionId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/v1/sessions/{sessionId}", "404"}, m.requests[0])
}
