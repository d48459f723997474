package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lindsim/internal/catalog"
	"github.com/san-kum/lindsim/internal/config"
	"github.com/san-kum/lindsim/internal/curve"
	"github.com/san-kum/lindsim/internal/export"
	"github.com/san-kum/lindsim/internal/lsys"
	"github.com/san-kum/lindsim/internal/storage"
	"github.com/san-kum/lindsim/internal/tui"
	"github.com/san-kum/lindsim/internal/viz"
)

var (
	dataDir    string
	iterations int
	configFile string
	preset     string
	outFile    string
)

// main registers the lindsim commands; with no subcommand it opens the
// interactive browser. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lindsim",
		Short: "L-system curve generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, []string{config.DefaultSystem})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lindsim", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate [system]",
		Short: "generate a curve and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "generation count")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rewriteCmd := &cobra.Command{
		Use:   "rewrite [system]",
		Short: "print the expanded symbol string",
		Args:  cobra.ExactArgs(1),
		RunE:  runRewrite,
	}
	rewriteCmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "generation count")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list registered L-systems",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run points to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run as an SVG polyline",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	viewCmd := &cobra.Command{
		Use:   "view [system]",
		Short: "interactive curve browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}

	rootCmd.AddCommand(generateCmd, rewriteCmd, systemsCmd, presetsCmd, listCmd,
		plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, system string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.System = system

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg.Iterations = p.Iterations
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		cfg.System = system
	}

	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	} else if preset == "" && configFile == "" {
		cfg.Iterations = iterations
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	system := args[0]

	cfg, err := loadConfig(cmd, system)
	if err != nil {
		return err
	}

	cat := catalog.New()
	def, err := cat.Get(system)
	if err != nil {
		return err
	}

	result, err := curve.Generate(def, cfg.Iterations)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("symbols: %d\n", len(result.Symbols))
	fmt.Printf("commands: %d\n", len(result.Commands))
	fmt.Printf("points: %d\n", len(result.Points))
	if len(result.Commands) > 0 {
		fmt.Printf("segment length: %.6f\n", result.Commands[0].Distance)
	}

	return nil
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	def, err := cat.Get(args[0])
	if err != nil {
		return err
	}

	symbols, err := lsys.Rewrite(def, iterations)
	if err != nil {
		return err
	}

	fmt.Println(symbols)
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	cat := catalog.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAXIOM\tRULES\tMAX")
	for _, name := range cat.List() {
		def, err := cat.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%c\t%d\t%d\n", def.Name, def.Axiom, len(def.Rules), def.MaxDepth)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tN\tSYMBOLS\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Iterations,
			run.Symbols,
			run.Points,
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

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s  iterations: %d\n\n", meta.System, meta.Iterations)

	canvas := viz.NewCanvas(config.DefaultCanvasWidth, config.DefaultCanvasHeight)
	canvas.DrawPath(points)
	fmt.Println(canvas.String())

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("x along path"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("y along path"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 9, 64),
			strconv.FormatFloat(p.Y, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	svg := export.PathToSVG(points, cfg.SVG.Width, cfg.SVG.Height, cfg.SVG.Stroke)
	if svg == "" {
		return fmt.Errorf("not enough points for an SVG path")
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func runView(cmd *cobra.Command, args []string) error {
	system := config.DefaultSystem
	if len(args) > 0 {
		system = args[0]
	}

	cat := catalog.New()
	if _, err := cat.Get(system); err != nil {
		return err
	}

	m := tui.NewModel(cat, system, config.DefaultIterations,
		config.DefaultCanvasWidth, config.DefaultCanvasHeight)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
