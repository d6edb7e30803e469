// Command swipeback shows a stack of panels that can be dismissed by
// swiping them away from their edges.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"honnef.co/go/swipeback/config"
	"honnef.co/go/swipeback/mysync"
	"honnef.co/go/swipeback/telemetry"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// reload is a config published by the watcher. Gen increases with every
// reload so the UI can tell whether it has applied it.
type reload struct {
	Gen  int
	File config.File
}

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "Path to a TOML or YAML config `file`")
		logLevel   = flag.String("log-level", "info", "Minimum log `level` (debug, info, warn, error)")
		metrics    = flag.String("metrics", "", "Serve Prometheus metrics on `addr`")
	)
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %s\n", *logLevel, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	file, err := loadConfig(*configPath, isFlagSet("config"))
	if err != nil {
		log.Error("couldn't load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var m *telemetry.Metrics
	if *metrics != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		m = telemetry.New(reg)
		go func() {
			if err := telemetry.Serve(ctx, *metrics, reg, log); err != nil {
				log.Error("metrics server stopped", "err", err)
			}
		}()
	}

	w := app.NewWindow(
		app.Title("Swipe back"),
		app.Size(unit.Dp(400), unit.Dp(700)),
	)

	latest := mysync.NewMutex(reload{File: file})
	if _, err := os.Stat(*configPath); err == nil {
		go func() {
			err := config.Watch(ctx, *configPath, log, func(f config.File) {
				r, u := latest.Lock()
				r.Gen++
				r.File = f
				u.Unlock()
				w.Invalidate()
			})
			if err != nil {
				log.Warn("not watching config", "err", err)
			}
		}()
	}

	go func() {
		d := newDemo(log, m, latest)
		if err := d.run(w); err != nil {
			log.Error("window failed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadConfig loads the config at path. A missing file means the defaults,
// unless the user asked for that file explicitly.
func loadConfig(path string, explicit bool) (config.File, error) {
	f, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.File{}, nil
	}
	return f, err
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
