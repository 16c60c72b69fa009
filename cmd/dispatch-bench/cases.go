// README: Bench cases; Redis reachability, API contract checks and a concurrent run load.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatchsim/internal/infra"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"
)

// One driver, one rider: pickup at 8, dropoff at 12, ride distance 20.
const defaultEvents = "4 DriverRequest John 3,2 5\n4 RiderRequest Jane 10,13 1,2 20\n"

type Runner struct {
	cfg    Config
	httpc  *http.Client
	redis  *redis.Client
	events string
	// lastRunID is set by the create case and read by the fetch case.
	lastRunID string
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: 10 * time.Second},
		events: defaultEvents,
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	r.redis = infra.NewRedis(r.cfg.RedisAddr)
	if r.cfg.EventsPath != "" {
		if b, err := os.ReadFile(r.cfg.EventsPath); err == nil {
			r.events = string(b)
		} else {
			fmt.Printf("WARN    reading %s: %v, using built-in events\n", r.cfg.EventsPath, err)
		}
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))
	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: statusSkip, Note: "redis not configured"}
				}
				if err := infra.PingRedis(ctx, r.redis); err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil)
				return expect(status, latency, err, http.StatusOK)
			},
		},
		{
			Name: "Simulation: run event list",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodPost, base+"/api/simulations", map[string]any{"events": r.events})
				res := expect(status, latency, err, http.StatusCreated)
				if res.Status != statusPass {
					return res
				}
				var run struct {
					ID     string `json:"run_id"`
					Report struct {
						RideDistance float64 `json:"driver_ride_distance"`
					} `json:"report"`
				}
				if err := json.Unmarshal(body, &run); err != nil || run.ID == "" {
					return Result{Status: statusFail, Note: "response missing run_id"}
				}
				r.lastRunID = run.ID
				res.Note = fmt.Sprintf("run_id=%s ride_distance=%.2f", run.ID, run.Report.RideDistance)
				return res
			},
		},
		{
			Name: "Simulation: malformed event list -> 400",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodPost, base+"/api/simulations", map[string]any{"events": "4 DriverRequest John"})
				return expect(status, latency, err, http.StatusBadRequest)
			},
		},
		{
			Name: "Simulation: fetch cached run",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.lastRunID == "" {
					return Result{Status: statusSkip, Note: "no run created"}
				}
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/api/simulations/"+r.lastRunID, nil)
				return expect(status, latency, err, http.StatusOK)
			},
		},
		{
			Name: "Simulation: unknown run -> 404",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/api/simulations/00000000-0000-0000-0000-000000000000", nil)
				return expect(status, latency, err, http.StatusNotFound)
			},
		},
		{
			Name: "Perf: concurrent runs",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/simulations", map[string]any{"events": r.events})
			},
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, b, time.Since(start), err
}

func expect(status int, latency time.Duration, err error, want int) Result {
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	if status != want {
		return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, want)}
	}
	return Result{Status: statusPass, Latency: latency}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()

	var (
		mu       sync.Mutex
		total    int
		failures int
		latency  time.Duration
	)
	wg := sync.WaitGroup{}
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				status, _, d, err := r.do(ctx, http.MethodPost, url, payload)
				if ctx.Err() != nil {
					return
				}
				mu.Lock()
				total++
				latency += d
				if err != nil || status != http.StatusCreated {
					failures++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if total == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	note := fmt.Sprintf("requests=%d failures=%d rps=%.1f", total, failures, float64(total)/r.cfg.Duration.Seconds())
	avg := latency / time.Duration(total)
	if failures > 0 {
		return Result{Status: statusFail, Latency: avg, Note: note}
	}
	return Result{Status: statusPass, Latency: avg, Note: note}
}
