package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"hexflake/internal/core"
	"hexflake/internal/engine"
	"hexflake/internal/render"
	"hexflake/internal/sims/snowflake"
)

type job struct {
	preset int
}

type result struct {
	preset  int
	name    string
	size    int
	stats   statsRow
	history []float64
	elapsed time.Duration
	frame   render.Frame
	err     error
}

type options struct {
	rule       string
	ticks      int
	iterations int
	size       int
	window     int
	tps        int
	overrides  []override
}

func main() {
	rule := flag.String("rule", snowflake.Name, "update rule to sweep ("+strings.Join(core.Names(), ", ")+")")
	ticks := flag.Int("ticks", 200, "frame ticks to run per preset")
	ipf := flag.Int("ipf", 1, "generations per frame tick")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	preset := flag.Int("preset", -1, "run only this preset index (-1 runs all)")
	size := flag.Int("size", 0, "override the preset grid size (0 keeps it)")
	window := flag.Int("window", 512, "side length of rendered snapshots in pixels")
	tps := flag.Int("tps", 0, "pace ticks at this rate per worker (0 runs flat out)")
	out := flag.String("out", "", "directory for PNG snapshots (empty disables)")
	thumb := flag.Int("thumb", 128, "thumbnail side length written next to each snapshot (0 disables)")
	var sets kvList
	flag.Var(&sets, "set", "coefficient override in key=value form (repeatable)")
	flag.Parse()

	overrides, err := parseOverrides(sets)
	if err != nil {
		log.Fatalf("preset-sweep: %v", err)
	}
	opts := options{rule: *rule, ticks: *ticks, iterations: *ipf, size: *size, window: *window, tps: *tps, overrides: overrides}

	catalog, err := engine.New(engine.WithRule(*rule), engine.WithConfig(smallConfig()))
	if err != nil {
		log.Fatalf("preset-sweep: %v", err)
	}
	var presets []int
	if *preset >= 0 {
		if _, _, err := catalog.PresetInfo(*preset); err != nil {
			log.Fatalf("preset-sweep: %v", err)
		}
		presets = append(presets, *preset)
	} else {
		for i := 0; i < catalog.PresetCount(); i++ {
			presets = append(presets, i)
		}
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatalf("preset-sweep: %v", err)
		}
	}
	if *workers < 1 {
		*workers = 1
	}

	log.Printf("sweeping %d presets with %s (%d workers, %d ticks x %d generations)", len(presets), catalog.Name(), *workers, *ticks, max(*ipf, 1))
	if *tps > 0 {
		log.Printf("pacing each worker at %v per tick", core.NewFixedStep(*tps).Interval())
	}

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runPreset(j, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range presets {
			jobs <- job{preset: p}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		if res.err != nil {
			log.Printf("preset %d: %v", res.preset, res.err)
			continue
		}
		if *out != "" {
			paths, err := writeSnapshot(*out, res, *thumb)
			if err != nil {
				log.Printf("preset %d: snapshot: %v", res.preset, err)
			} else {
				for _, p := range paths {
					log.Printf("wrote %s", p)
				}
			}
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].preset < all[j].preset })

	fmt.Println(renderReport(all, time.Since(start)))
}

func runPreset(j job, opts options) result {
	res := result{preset: j.preset}
	rule := opts.rule
	if rule == "" {
		rule = snowflake.Name
	}
	s, err := engine.New(engine.WithRule(rule), engine.WithWindowSize(opts.window), engine.WithConfig(smallConfig()))
	if err != nil {
		res.err = err
		return res
	}
	if err := s.ApplyPreset(j.preset); err != nil {
		res.err = err
		return res
	}
	res.name, _, _ = s.PresetInfo(j.preset)
	if opts.size > 0 {
		if err := s.SetGridSize(opts.size); err != nil {
			res.err = err
			return res
		}
	}
	if err := applyOverrides(s, opts.overrides); err != nil {
		res.err = err
		return res
	}
	s.SetIterationsPerFrame(opts.iterations)
	res.size = s.GridSize()

	var pacer *core.FixedStep
	if opts.tps > 0 {
		pacer = core.NewFixedStep(opts.tps)
	}
	start := time.Now()
	res.history = make([]float64, 0, opts.ticks+1)
	res.history = append(res.history, float64(s.Stats().CrystalCells))
	for t := 0; t < opts.ticks; t++ {
		if pacer != nil {
			pacer.Wait()
		}
		res.frame = s.Tick()
		res.history = append(res.history, float64(s.Stats().CrystalCells))
	}
	if opts.ticks == 0 {
		res.frame = s.Render()
	}
	res.elapsed = time.Since(start)
	res.stats = newStatsRow(s)
	return res
}
