package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fractview/internal/config"
	"github.com/san-kum/fractview/internal/explore"
	"github.com/san-kum/fractview/internal/fractal"
	"github.com/san-kum/fractview/internal/palette"
	"github.com/san-kum/fractview/internal/storage"
)

var (
	dataDir     string
	width       int
	height      int
	maxIter     int
	workers     int
	paletteName string
	configFile  string
	outPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fractview",
		Short: "interactive mandelbrot set explorer",
		RunE:  runExplore,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "explore interactively in the terminal",
		RunE:  runExplore,
	}

	renderCmd := &cobra.Command{
		Use:   "render [region]",
		Short: "render a region to png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outPath, "out", "", "write png to path instead of the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		RunE:  listRenders,
	}

	exportCmd := &cobra.Command{
		Use:   "export [render_id]",
		Short: "export render metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRender,
	}

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list named regions",
		RunE:  listRegions,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list color palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range palette.Names() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [region]",
		Short: "benchmark the escape-time engine",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchEngine,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [region]",
		Short: "iteration statistics for a region",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeRegion,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fractview.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	for _, cmd := range []*cobra.Command{exploreCmd, renderCmd, benchCmd, analyzeCmd} {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "raster width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "raster height")
		cmd.Flags().IntVar(&maxIter, "iterations", config.DefaultMaxIterations, "max escape-time iterations")
		cmd.Flags().IntVar(&workers, "workers", 0, "recompute worker count (0 = all cpus)")
		cmd.Flags().StringVar(&paletteName, "palette", config.DefaultPalette, "color palette")
	}

	rootCmd.AddCommand(exploreCmd, renderCmd, listCmd, exportCmd, regionsCmd, palettesCmd, benchCmd, analyzeCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, the optional config file, and any
// explicitly set flags; flags win over file values, file values win
// over defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("iterations") {
		cfg.MaxIterations = maxIter
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteName
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

// newViewport builds a viewport for the given region with everything
// but the raster size applied; the caller's SetSize triggers the
// actual render.
func newViewport(cfg *config.Config, regionName string) (*fractal.Viewport, fractal.Window, error) {
	win, err := fractal.Region(regionName)
	if err != nil {
		return nil, fractal.Window{}, err
	}

	scheme, err := palette.Get(cfg.Palette)
	if err != nil {
		return nil, fractal.Window{}, err
	}

	vp := fractal.New()
	if cfg.Workers > 0 {
		vp.SetWorkers(cfg.Workers)
	}
	vp.SetMaxIterations(cfg.MaxIterations)
	vp.SetPalette(scheme)
	if err := vp.SetWindow(win); err != nil {
		return nil, fractal.Window{}, err
	}
	return vp, win, nil
}

func regionArg(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Region
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := palette.Get(cfg.Palette); err != nil {
		return err
	}

	m := explore.New(cfg.MaxIterations, cfg.Workers, cfg.Palette)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	region := regionArg(args, cfg)

	vp, win, err := newViewport(cfg, region)
	if err != nil {
		return err
	}

	fmt.Printf("rendering %s at %dx%d, %d iterations...\n", region, cfg.Width, cfg.Height, cfg.MaxIterations)
	start := time.Now()
	if err := vp.SetSize(cfg.Width, cfg.Height); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, vp.Image()); err != nil {
			return err
		}
		fmt.Printf("completed in %v\n", elapsed)
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	renderID, err := st.Save(vp.Image(), storage.RenderMetadata{
		Region:        region,
		Width:         cfg.Width,
		Height:        cfg.Height,
		MaxIterations: cfg.MaxIterations,
		Palette:       cfg.Palette,
		Window:        win,
		ElapsedMS:     float64(elapsed.Microseconds()) / 1000,
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("render id: %s\n", renderID)
	return nil
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREGION\tTIME\tSIZE\tITER\tPALETTE\tRENDER_MS")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%.1f\n",
			r.ID,
			r.Region,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Width, r.Height,
			r.MaxIterations,
			r.Palette,
			r.ElapsedMS,
		)
	}

	return w.Flush()
}

func exportRender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func listRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY")

	for _, name := range fractal.RegionNames() {
		win, err := fractal.Region(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t[%g,%g]\t[%g,%g]\n", name, win.XStart, win.XEnd, win.YStart, win.YEnd)
	}

	return w.Flush()
}

func benchEngine(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	region := regionArg(args, cfg)

	sizes := [][2]int{{320, 240}, {640, 480}, {1280, 960}}
	budgets := []int{100, 500, 1000}

	fmt.Printf("benchmarking %s\n\n", region)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITER\tTIME\tPIXELS/SEC")

	for _, size := range sizes {
		for _, budget := range budgets {
			cfgCopy := *cfg
			cfgCopy.MaxIterations = budget

			vp, _, err := newViewport(&cfgCopy, region)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := vp.SetSize(size[0], size[1]); err != nil {
				return err
			}
			elapsed := time.Since(start)

			pixels := size[0] * size[1]
			pxPerSec := float64(pixels) / elapsed.Seconds()

			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n", size[0], size[1], budget, elapsed, pxPerSec)
		}
	}

	return w.Flush()
}

func analyzeRegion(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	region := regionArg(args, cfg)

	vp, win, err := newViewport(cfg, region)
	if err != nil {
		return err
	}
	if err := vp.SetSize(cfg.Width, cfg.Height); err != nil {
		return err
	}

	fmt.Printf("region: %s\n", region)
	fmt.Printf("window: x [%g,%g]  y [%g,%g]\n", win.XStart, win.XEnd, win.YStart, win.YEnd)
	fmt.Printf("raster: %dx%d, %d iterations\n\n", cfg.Width, cfg.Height, cfg.MaxIterations)

	profile := vp.RowProfile()
	graph := asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean iterations per row"),
	)
	fmt.Println(graph)
	fmt.Println()

	counts := vp.Histogram()
	histogram := make([]float64, len(counts)-1)
	inside := counts[len(counts)-1]
	total := 0
	for i, c := range counts {
		total += c
		if i < len(histogram) {
			histogram[i] = float64(c)
		}
	}

	graph = asciigraph.Plot(histogram,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("escaped pixels per iteration count"),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("inside-set fraction: %.4f\n", float64(inside)/float64(total))
	return nil
}
