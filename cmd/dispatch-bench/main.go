// README: Smoke and load runner for a live dispatch API; prints per-case results and a summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "dispatch-bench:", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	bench := NewRunner(cfg)
	results := bench.RunAll(ctx)

	counts := tally(results)
	fmt.Printf("\n== Summary ==\nPASS=%d FAIL=%d SKIP=%d\n", counts[statusPass], counts[statusFail], counts[statusSkip])

	if counts[statusFail] > 0 || (cfg.Strict && counts[statusSkip] > 0) {
		os.Exit(1)
	}
}

func tally(results []Result) map[string]int {
	counts := make(map[string]int, 3)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

type Config struct {
	BaseURL     string
	RedisAddr   string
	EventsPath  string
	Strict      bool
	Timeout     time.Duration
	Concurrency int
	Duration    time.Duration
}

// loadConfig takes defaults from DISPATCH_BENCH_* variables (DISPATCH_REDIS_ADDR
// for the redis address, shared with the API); flags in args win over both.
func loadConfig(args []string) (Config, error) {
	v := viper.New()
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("redis", "localhost:6379")
	v.SetDefault("events", "")
	v.SetDefault("strict", false)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("concurrency", 20)
	v.SetDefault("duration", 10*time.Second)
	v.SetEnvPrefix("DISPATCH_BENCH")
	v.AutomaticEnv()
	if err := v.BindEnv("redis", "DISPATCH_REDIS_ADDR"); err != nil {
		return Config{}, err
	}

	var cfg Config
	fs := flag.NewFlagSet("dispatch-bench", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "base-url", v.GetString("base_url"), "API base URL")
	fs.StringVar(&cfg.RedisAddr, "redis", v.GetString("redis"), "Redis address (empty to skip)")
	fs.StringVar(&cfg.EventsPath, "events", v.GetString("events"), "Event list used for load cases (default: built-in)")
	fs.BoolVar(&cfg.Strict, "strict", v.GetBool("strict"), "Fail on skipped cases")
	fs.DurationVar(&cfg.Timeout, "timeout", v.GetDuration("timeout"), "Total timeout")
	fs.IntVar(&cfg.Concurrency, "concurrency", v.GetInt("concurrency"), "Concurrency for perf cases")
	fs.DurationVar(&cfg.Duration, "duration", v.GetDuration("duration"), "Duration for perf cases")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Concurrency <= 0 {
		return Config{}, fmt.Errorf("concurrency must be positive, got %d", cfg.Concurrency)
	}
	if cfg.Timeout <= 0 || cfg.Duration <= 0 {
		return Config{}, fmt.Errorf("timeout and duration must be positive, got %s and %s", cfg.Timeout, cfg.Duration)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}
