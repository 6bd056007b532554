package main

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/complex", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServe_Complex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(10, 2)

	w := post(t, r, `{"kind": "cech", "radius": 0.6, "points": [[0, 0], [1, 0], [0.5, 0.8]]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3+3+1)
	assert.Contains(t, w.Body.String(), `"components":1`)
}

func TestServe_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(3, 1)

	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed", `{"radius": `, http.StatusBadRequest},
		{"unknown kind", `{"kind": "alpha", "radius": 1, "points": [[0, 0]]}`, http.StatusBadRequest},
		{"negative radius", `{"radius": -1, "points": [[0, 0]]}`, http.StatusBadRequest},
		{"no points", `{"radius": 1}`, http.StatusBadRequest},
		{"too many", `{"radius": 1, "random": {"n": 4, "seed": 1}}`, http.StatusRequestEntityTooLarge},
		{"too many explicit", `{"radius": 1, "points": [[0, 0], [1, 0], [2, 0], [3, 0]]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, r, tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

// TestServe_HugeRandomCloud rejects an oversized random cloud before any
// point is generated.
func TestServe_HugeRandomCloud(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(10, 1)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	w := post(t, r, `{"radius": 0.1, "random": {"n": 2000000000, "seed": 1}}`)
	runtime.ReadMemStats(&after)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20),
		"the rejected cloud must not be materialized")
}

func TestServe_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	w := httptest.NewRecorder()
	newRouter(1, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fixed-id", w.Header().Get(requestIDHeader))
}
