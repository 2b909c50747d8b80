package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/types"
)

type hookRecorder struct {
	mu           sync.Mutex
	grid         string
	pagination   string
	resultsCount int
	countCalls   int
	stats        catalog.Stats
	loading      []bool
}

func (r *hookRecorder) hooks() Hooks {
	return Hooks{
		Grid: func(html string) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.grid = html
		},
		Pagination: func(html string) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.pagination = html
		},
		ResultsCount: func(count int) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.resultsCount = count
			r.countCalls++
		},
		Stats: func(stats catalog.Stats) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.stats = stats
		},
		Loading: func(active bool) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.loading = append(r.loading, active)
		},
	}
}

const toolsPayload = `{
	"success": true,
	"tools": [
		{"id":"1","name":"WriteBot","description":"A chat assistant","category":"writing","pricing":"free","listing_type":"verified","tags":["ai","chat"],"features":["Drafting"],"rating":4.5,"date_added":"2024-03-01T00:00:00Z","website_url":"https://a.example"},
		{"id":"2","name":"PixelForge","description":"Image maker","category":"image-generation","pricing":"paid","listing_type":"standard","tags":["images"],"features":[],"rating":3,"date_added":"2024-04-01T00:00:00Z","website_url":"https://b.example"},
		{"id":"3","name":"CodePilot","description":"Coding helper","category":"developer-tools","pricing":"open_source","listing_type":"featured","tags":["code"],"features":["Completion"],"rating":5,"date_added":"2024-05-01T00:00:00Z","website_url":"https://c.example"}
	]
}`

func toolsServer(t *testing.T, payload string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tools/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDirectory(t *testing.T, payload string, status int) (*Directory, *hookRecorder) {
	t.Helper()
	srv := toolsServer(t, payload, status)
	recorder := &hookRecorder{}
	d := NewDirectory(NewLoader(srv.URL), recorder.hooks(),
		WithDebounce(0),
		WithMinLoading(0),
		WithSettings(&types.Settings{Theme: "light"}))
	return d, recorder
}

func TestLoadRendersEverything(t *testing.T) {
	d, recorder := newTestDirectory(t, toolsPayload, http.StatusOK)
	d.Load(context.Background())

	require.Equal(t, 3, d.Catalog().ResultCount())
	assert.Equal(t, catalog.Stats{TotalTools: 3, TotalCategories: 3, FreeTools: 2}, recorder.stats)
	assert.Equal(t, 3, recorder.resultsCount)
	assert.Contains(t, recorder.grid, "WriteBot")
	assert.Contains(t, recorder.grid, "listing-featured")
	assert.Equal(t, []bool{true, false}, recorder.loading)
	// single page, no controls
	assert.Empty(t, recorder.pagination)
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	d, recorder := newTestDirectory(t, `{"error":"boom"}`, http.StatusInternalServerError)
	d.Load(context.Background())

	assert.Equal(t, 0, d.Catalog().ResultCount())
	assert.Contains(t, recorder.grid, "no-results")
	assert.Equal(t, []bool{true, false}, recorder.loading)
}

func TestLoadApiErrorDegradesToEmpty(t *testing.T) {
	d, _ := newTestDirectory(t, `{"success":false,"error":"database down"}`, http.StatusOK)
	d.Load(context.Background())
	assert.Equal(t, 0, d.Catalog().ResultCount())
}

func TestLoadMalformedPayloadDegradesToEmpty(t *testing.T) {
	d, _ := newTestDirectory(t, `{"success":true,"tools":`, http.StatusOK)
	d.Load(context.Background())
	assert.Equal(t, 0, d.Catalog().ResultCount())
}

func TestCommandsRecomputeAndRender(t *testing.T) {
	d, recorder := newTestDirectory(t, toolsPayload, http.StatusOK)
	d.Load(context.Background())

	d.SetQuery("chat")
	assert.Equal(t, 1, recorder.resultsCount)
	assert.Contains(t, recorder.grid, "WriteBot")
	assert.NotContains(t, recorder.grid, "PixelForge")

	d.SetPricing("paid")
	assert.Equal(t, 0, recorder.resultsCount)
	assert.Contains(t, recorder.grid, "no-results")

	d.ClearFilters()
	assert.Equal(t, 3, recorder.resultsCount)
}

func TestSetQueryIsDebounced(t *testing.T) {
	srv := toolsServer(t, toolsPayload, http.StatusOK)
	recorder := &hookRecorder{}
	d := NewDirectory(NewLoader(srv.URL), recorder.hooks(),
		WithDebounce(40*time.Millisecond),
		WithMinLoading(0))
	d.Load(context.Background())

	recorder.mu.Lock()
	callsAfterLoad := recorder.countCalls
	recorder.mu.Unlock()

	d.SetQuery("c")
	d.SetQuery("ch")
	d.SetQuery("cha")
	d.SetQuery("chat")

	time.Sleep(150 * time.Millisecond)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, callsAfterLoad+1, recorder.countCalls, "burst should collapse into one recompute")
	assert.Equal(t, 1, recorder.resultsCount)
}

func TestMissingHooksAreTolerated(t *testing.T) {
	srv := toolsServer(t, toolsPayload, http.StatusOK)
	var gridHTML string
	d := NewDirectory(NewLoader(srv.URL), Hooks{
		Grid: func(html string) { gridHTML = html },
		// every other hook absent
	}, WithDebounce(0), WithMinLoading(0))

	d.Load(context.Background())
	d.SetQuery("chat")
	d.GoToPage(99)

	assert.True(t, strings.Contains(gridHTML, "WriteBot"))
}

func TestGoToPageOutOfRangeIsNoOp(t *testing.T) {
	d, recorder := newTestDirectory(t, toolsPayload, http.StatusOK)
	d.Load(context.Background())
	before := recorder.grid

	d.GoToPage(0)
	d.GoToPage(2)
	assert.Equal(t, before, recorder.grid)
	assert.Equal(t, 1, d.Catalog().View.Page)
}

func TestShowDetail(t *testing.T) {
	d, _ := newTestDirectory(t, toolsPayload, http.StatusOK)
	d.Load(context.Background())

	html, ok := d.ShowDetail("1")
	require.True(t, ok)
	assert.Contains(t, html, "WriteBot")

	_, ok = d.ShowDetail("missing")
	assert.False(t, ok)
}

func TestToggleTheme(t *testing.T) {
	d, _ := newTestDirectory(t, toolsPayload, http.StatusOK)
	assert.Equal(t, "dark", d.ToggleTheme())
	assert.Equal(t, "light", d.ToggleTheme())
}

func TestMinLoadingDuration(t *testing.T) {
	srv := toolsServer(t, toolsPayload, http.StatusOK)
	recorder := &hookRecorder{}
	d := NewDirectory(NewLoader(srv.URL), recorder.hooks(),
		WithDebounce(0),
		WithMinLoading(50*time.Millisecond))

	started := time.Now()
	d.Load(context.Background())
	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.Equal(t, []bool{true, false}, recorder.loading)
}
