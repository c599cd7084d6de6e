package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifeterm/internal/analysis"
	"github.com/san-kum/lifeterm/internal/config"
	"github.com/san-kum/lifeterm/internal/export"
	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/metrics"
	"github.com/san-kum/lifeterm/internal/optim"
	"github.com/san-kum/lifeterm/internal/sim"
	"github.com/san-kum/lifeterm/internal/storage"
	"github.com/san-kum/lifeterm/internal/term"
	"github.com/san-kum/lifeterm/internal/tui"
	"github.com/san-kum/lifeterm/internal/viz"
)

func newScreen(cfg *config.Config) (term.Screen, error) {
	switch cfg.Backend {
	case config.BackendTcell:
		return term.NewTcell(cfg.Palette)
	default:
		return term.NewANSI(os.Stdin, os.Stdout, cfg.Palette)
	}
}

// runLife drives the frame loop until SIGINT/SIGTERM or --frames.
func runLife(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := seedGrid(cfg)
	if err != nil {
		return err
	}

	screen, err := newScreen(cfg)
	if err != nil {
		return err
	}
	defer screen.Close()
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			panic(r)
		}
	}()

	view, err := viz.New(screen, cfg.Width, cfg.Height, cfg.Margin)
	if err != nil {
		return err
	}
	loop, err := sim.NewLoop(g, view, cfg.Interval, sim.WithMaxFrames(frames))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := loop.Run(ctx); err != nil {
		return err
	}
	log.Printf("ran %d frames in %v, population %d", view.Frames(), time.Since(start), g.Population())
	return nil
}

func viewLife(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := seedGrid(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(g, cfg.Interval, cfg.Palette), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func simulate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := seedGrid(cfg)
	if err != nil {
		return err
	}

	s := sim.New()
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	simCfg := sim.DefaultConfig()
	simCfg.Generations = cfg.Generations
	simCfg.StopOnCycle = stopOnCycle

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := s.Run(ctx, g, simCfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Pattern: cfg.Pattern,
		Seed:    cfg.Seed,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Density: cfg.Density,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("run saved: %s\n", runID)
	fmt.Printf("generations: %d\n", result.Generations)
	if result.Period > 0 {
		fmt.Printf("cycle: period %d from generation %d\n", result.Period, result.CycleStart)
	}
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %.2f\n", name, values[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tSEED\tGENS\tPERIOD")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%d\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Seed,
			run.Generations,
			run.Period,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s (%dx%d)\n", meta.Pattern, meta.Width, meta.Height)
	fmt.Printf("generations: %d\n\n", len(pops)-1)

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("population"),
	))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	pops, err := st.LoadPopulations(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, pops)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	pops, err := st.LoadPopulations(args[0])
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, pops)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	pops, err := st.LoadPopulations(args[0])
	if err != nil {
		return err
	}
	svg := export.PopulationToSVG(pops, 800, 300, "#00ff88")
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}
	fmt.Println(svg)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	pops, err := st.LoadPopulations(args[0])
	if err != nil {
		return err
	}

	s := analysis.Summarize(pops)
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n", s.Samples)
	fmt.Printf("population: min %d, max %d, mean %.2f, stddev %.2f\n", s.Min, s.Max, s.Mean, s.StdDev)
	if s.Period > 0 {
		fmt.Printf("dominant period: %.2f generations (%.0f%% of spectrum)\n", s.Period, s.Strength*100)
	} else {
		fmt.Println("dominant period: none")
	}
	if meta.Period > 0 {
		fmt.Printf("exact cycle: period %d from generation %d\n", meta.Period, meta.CycleStart)
	}
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if snapshotAt < 0 {
		return fmt.Errorf("generation must not be negative, got %d", snapshotAt)
	}
	g, err := seedGrid(cfg)
	if err != nil {
		return err
	}
	for g.Generation() < snapshotAt {
		g.Tick()
	}
	svg := export.GridToSVG(g, svgScale, cfg.Palette)
	if svg == "" {
		return fmt.Errorf("scale must be positive, got %d", svgScale)
	}
	fmt.Println(svg)
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	eval := func(ctx context.Context, p map[string]float64) (map[string]float64, error) {
		g, err := life.Seed(cfg.Pattern, cfg.Width, cfg.Height, p["density"], rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return nil, err
		}
		s := sim.New()
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}
		result, err := s.Run(ctx, g, sim.Config{Generations: cfg.Generations})
		if err != nil {
			return nil, err
		}
		return result.Metrics, nil
	}

	gs := optim.NewGridSearch([]string{"density"}, [][]float64{densities})
	if maximize {
		gs.Maximize()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	best, trials, err := gs.Search(ctx, eval, sweepMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DENSITY\t%s\n", strings.ToUpper(sweepMetric))
	for _, t := range trials {
		fmt.Fprintf(w, "%.3f\t%.3f\n", t.Params["density"], t.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nbest density: %.3f (%s %.3f)\n", best.Params["density"], sweepMetric, best.Value)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATTERN\tSIZE")
	for _, name := range config.ListPresets() {
		cfg := config.DefaultConfig()
		cfg.Apply(config.GetPreset(name))
		fmt.Fprintf(w, "%s\t%s\t%dx%d\n", name, cfg.Pattern, cfg.Width, cfg.Height)
	}
	return w.Flush()
}

func listPatterns(cmd *cobra.Command, args []string) error {
	fmt.Println(strings.Join(life.PatternNames(), "\n"))
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if benchRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", benchRuns)
	}

	factory := func(s int64) (*life.Grid, error) {
		return life.Seed(cfg.Pattern, cfg.Width, cfg.Height, cfg.Density, rand.New(rand.NewSource(s)))
	}
	simCfg := sim.Config{Generations: cfg.Generations}

	fmt.Printf("benchmarking %s %dx%d, %d runs\n\n", cfg.Pattern, cfg.Width, cfg.Height, benchRuns)

	start := time.Now()
	results, err := sim.NewEnsemble(factory, benchRuns, cfg.Seed).
		WithMetrics(metrics.Default).
		Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGENS\tFINAL POP\tMEAN POP\tCHURN")
	total := 0
	for i, r := range results {
		total += r.Generations
		fmt.Fprintf(w, "%d\t%d\t%d\t%.1f\t%.3f\n",
			cfg.Seed+int64(i),
			r.Generations,
			r.Populations[len(r.Populations)-1],
			r.Metrics["mean_population"],
			r.Metrics["churn"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d generations in %v (%.0f gen/s)\n", total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	return nil
}
