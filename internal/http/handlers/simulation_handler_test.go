// README: Handler tests for running and fetching simulations.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dispatchsim/internal/http/handlers"
	"dispatchsim/internal/modules/simulation"
)

const scenario = "4 DriverRequest John 3,2 5\n4 RiderRequest Jane 10,13 1,2 20\n"

type memoryCache struct {
	mu   sync.Mutex
	runs map[string]*simulation.Run
}

func (c *memoryCache) Save(_ context.Context, run *simulation.Run) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs[run.ID] = run
	return nil
}

func (c *memoryCache) Get(_ context.Context, id string) (*simulation.Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if run, ok := c.runs[id]; ok {
		return run, nil
	}
	return nil, simulation.ErrNotFound
}

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := simulation.NewService(&memoryCache{runs: map[string]*simulation.Run{}}, nil, simulation.NoLimit)
	h := handlers.NewSimulationHandler(svc)
	r := gin.New()
	r.POST("/api/simulations", h.Run)
	r.GET("/api/simulations/:id", h.Get)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRun_CreatedThenFetched(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/api/simulations", map[string]any{"events": scenario})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created simulation.Run
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Processed != 6 {
		t.Fatalf("unexpected run: %+v", created)
	}
	// One ride of 20 blocks preceded by an 18-block approach.
	if created.Report.DriverRideDistance != 20 || created.Report.DriverTotalDistance != 38 {
		t.Fatalf("unexpected report: %+v", created.Report)
	}

	w = doRequest(r, http.MethodGet, "/api/simulations/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fetched simulation.Run
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.ID != created.ID || fetched.Report != created.Report {
		t.Fatalf("fetched run differs: %+v vs %+v", fetched, created)
	}
}

func TestRun_MaxTime(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/api/simulations", map[string]any{"events": scenario, "max_time": 8})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var run simulation.Run
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if run.MaxTime != 8 || run.Discarded != 2 {
		t.Fatalf("unexpected run: %+v", run)
	}
}

func TestRun_BadRequests(t *testing.T) {
	r := buildTestRouter()
	cases := []struct {
		name string
		body any
	}{
		{name: "missing events", body: map[string]any{}},
		{name: "malformed line", body: map[string]any{"events": "4 DriverRequest John 3,2"}},
		{name: "negative coordinate", body: map[string]any{"events": "0 DriverRequest John -1,2 5"}},
		{name: "wrong type", body: map[string]any{"events": 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/simulations", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGet_Errors(t *testing.T) {
	r := buildTestRouter()
	if w := doRequest(r, http.MethodGet, "/api/simulations/nope", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/api/simulations/"+uuid.NewString(), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}
