// Command bench compares array workloads against other sequence containers
// and renders the timings as bar charts.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/docker/go-units"
	"github.com/felixge/fgprof"
)

func main() {
	n := flag.Int("n", 100000, "elements per workload")
	reps := flag.Int("reps", 3, "repetitions per container, the fastest is kept")
	names := flag.String("workloads", "append,prepend,splice", "comma separated workloads")
	out := flag.String("out", ".", "directory for svg charts")
	asJSON := flag.Bool("json", false, "print the result model to stdout instead of rendering")
	render := flag.Bool("render", false, "read a result model from stdin and only render it")
	profile := flag.String("profile", "", "write an fgprof profile of the run to this path")
	flag.Parse()

	if *render {
		var models []model
		if err := json.NewDecoder(os.Stdin).Decode(&models); err != nil {
			slog.Error("decoding model", "err", err)
			os.Exit(1)
		}
		if err := writeCharts(*out, models); err != nil {
			slog.Error("rendering charts", "out", *out, "err", err)
			os.Exit(1)
		}
		return
	}

	c := config{N: *n, Reps: *reps, Workloads: strings.Split(*names, ",")}
	if err := bench(c, *out, *asJSON, *profile); err != nil {
		slog.Error("running benchmark", "err", err)
		os.Exit(1)
	}
}

func bench(c config, out string, asJSON bool, profile string) (err error) {
	if profile != "" {
		f, cerr := os.Create(profile)
		if cerr != nil {
			return cerr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			err = errors.Join(err, stop(), f.Close())
		}()
		slog.Info("profiling", "path", profile)
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	slog.Info("starting", "n", c.N, "reps", c.Reps, "workloads", c.Workloads)
	models, err := run(context.Background(), c)
	if err != nil {
		return err
	}
	runtime.ReadMemStats(&after)
	slog.Info("done", "allocated", units.BytesSize(float64(after.TotalAlloc-before.TotalAlloc)))

	for i := range models {
		for _, e := range models[i].Entries {
			slog.Info("result", "workload", models[i].Name, "container", e.Name, "value", e.Value, "unit", models[i].Unit)
		}
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models)
	}
	return writeCharts(out, models)
}
