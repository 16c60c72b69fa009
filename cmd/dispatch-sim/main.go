// README: CLI entry point; replays an event file and prints the monitor's report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"dispatchsim/internal/config"
	"dispatchsim/internal/infra"
	"dispatchsim/internal/modules/event"
	"dispatchsim/internal/modules/simulation"
)

func main() {
	var (
		eventsPath = flag.String("events", "", "event list file (required)")
		maxTime    = flag.Int("max-time", simulation.NoLimit, "discard events after this simulated time (-1: unbounded, default from config)")
		trace      = flag.Bool("trace", false, "print every executed event")
		asJSON     = flag.Bool("json", false, "print the report as JSON")
		configPath = flag.String("config", "", "config file (default ./dispatch.yaml if present)")
	)
	flag.Parse()

	if *eventsPath == "" {
		fmt.Fprintln(os.Stderr, "dispatch-sim: -events is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	logger, err := infra.NewLogger(os.Stderr, cfg.Log.Level, "dispatch-sim")
	if err != nil {
		log.Fatal("building logger", "err", err)
	}
	if !flagSet("max-time") {
		*maxTime = cfg.Sim.MaxTime
	}

	events, err := event.LoadFile(*eventsPath)
	if err != nil {
		logger.Fatal("loading events", "path", *eventsPath, "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []simulation.Option{
		simulation.WithMaxTime(*maxTime),
		simulation.WithLogger(logger),
	}
	if *trace {
		opts = append(opts, simulation.WithObserver(func(e event.Event) {
			fmt.Println(e)
		}))
	}
	engine := simulation.NewEngine(opts...)
	report, err := engine.Run(ctx, events)
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}

	out := summary{
		Report:    report,
		Events:    len(events),
		Processed: engine.Processed(),
		Discarded: engine.Discarded(),
	}
	if *asJSON {
		err = writeJSON(os.Stdout, out)
	} else {
		err = writeText(os.Stdout, out)
	}
	if err != nil {
		logger.Fatal("writing report", "err", err)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
