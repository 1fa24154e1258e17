package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	decomposer "github.com/aouyang1/go-decomposer"
	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, opt *decomposer.Options) *DashboardHandler {
	t.Helper()
	dec, err := decomposer.New(opt)
	require.NoError(t, err)
	return NewDashboardHandler(dec)
}

func TestGetDashboard(t *testing.T) {
	h := newHandler(t, nil)

	rr := httptest.NewRecorder()
	h.GetDashboard(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Figure 4: Irregular Component")
}

func TestGetDecomposition(t *testing.T) {
	h := newHandler(t, nil)

	rr := httptest.NewRecorder()
	h.GetDecomposition(rr, httptest.NewRequest(http.MethodGet, "/api/v1/decomposition", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body struct {
		Decomposition struct {
			Method    string              `json:"method"`
			Observed  []float64           `json:"observed"`
			Trend     []timedataset.Value `json:"trend"`
			Seasonal  []timedataset.Value `json:"seasonal"`
			Irregular []timedataset.Value `json:"irregular"`
		} `json:"decomposition"`
		Summary struct {
			SeasonalIndex []struct {
				Label string `json:"label"`
			} `json:"seasonal_index"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, "manual", body.Decomposition.Method)
	assert.Len(t, body.Decomposition.Observed, 72)
	require.Len(t, body.Decomposition.Trend, 72)
	assert.False(t, body.Decomposition.Trend[5].Valid)
	assert.True(t, body.Decomposition.Trend[6].Valid)
	assert.False(t, body.Decomposition.Irregular[66].Valid)
	assert.True(t, body.Decomposition.Seasonal[0].Valid)
	assert.Len(t, body.Summary.SeasonalIndex, 12)
	assert.Contains(t, rr.Body.String(), `"trend":[null,null,null,null,null,null,`)
}

func TestGetDecompositionError(t *testing.T) {
	opt := decomposer.NewDefaultOptions()
	h := newHandler(t, opt)
	opt.SeriesOptions.Length = 10

	rr := httptest.NewRecorder()
	h.GetDecomposition(rr, httptest.NewRequest(http.MethodGet, "/api/v1/decomposition", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	h.GetDashboard(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPing(t *testing.T) {
	h := newHandler(t, nil)

	rr := httptest.NewRecorder()
	h.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status": "ok"}`, rr.Body.String())
}
