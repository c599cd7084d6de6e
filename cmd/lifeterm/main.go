package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifeterm/internal/term"
)

var (
	dataDir  string
	debugLog bool

	width       int
	height      int
	margin      int
	interval    string
	density     float64
	seed        int64
	pattern     string
	backend     string
	alive       string
	background  string
	configFile  string
	preset      string
	frames      int
	generations int
	stopOnCycle bool
	benchRuns   int
	snapshotAt  int
	svgScale    int
	densities   []float64
	sweepMetric string
	maximize    bool
)

// main registers the commands and exits 1 when the selected one fails.
// A panic anywhere restores the terminal before the stack is printed.
func main() {
	defer func() {
		if r := recover(); r != nil {
			term.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nlifeterm crashed: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var logFile *os.File

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifeterm",
		Short: "conway's game of life in the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(debugLog)
		},
		RunE:         runLife,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifeterm", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write logs to logs/lifeterm.log")
	addBoardFlags(rootCmd)
	rootCmd.Flags().IntVar(&frames, "frames", 0, "stop after n frames (0 runs until interrupted)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the board in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLife,
	}
	addBoardFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 0, "stop after n frames (0 runs until interrupted)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "run the board in a full screen viewer",
		Args:  cobra.NoArgs,
		RunE:  viewLife,
	}
	addBoardFlags(viewCmd)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run headless and save the population history",
		Args:  cobra.NoArgs,
		RunE:  simulate,
	}
	addBoardFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&generations, "generations", 0, "generations to run (default from config)")
	simulateCmd.Flags().BoolVar(&stopOnCycle, "stop-on-cycle", true, "stop once the board repeats")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the population of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's population as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's population plot as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population statistics and dominant period",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write the board as svg after n generations",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	addBoardFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&snapshotAt, "at", 0, "generation to draw")
	snapshotCmd.Flags().IntVar(&svgScale, "scale", 8, "pixels per cell")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "search seed densities for the best value of a metric",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	addBoardFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&generations, "generations", 0, "generations per trial (default from config)")
	sweepCmd.Flags().Float64SliceVar(&densities, "densities", []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}, "densities to try")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "mean_population", "metric to optimize")
	sweepCmd.Flags().BoolVar(&maximize, "maximize", true, "prefer larger metric values")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		Args:  cobra.NoArgs,
		RunE:  listPatterns,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure generations per second over several seeds",
		Args:  cobra.NoArgs,
		RunE:  bench,
	}
	addBoardFlags(benchCmd)
	benchCmd.Flags().IntVar(&generations, "generations", 0, "generations per run (default from config)")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 8, "independent boards")

	rootCmd.AddCommand(runCmd, viewCmd, simulateCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, analyzeCmd, snapshotCmd, sweepCmd, presetsCmd, patternsCmd, benchCmd)
	return rootCmd
}
