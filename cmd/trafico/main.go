package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trafico-pr/trafico-cli/internal/api"
	"github.com/trafico-pr/trafico-cli/internal/config"
	"github.com/trafico-pr/trafico-cli/internal/models"
	"github.com/trafico-pr/trafico-cli/internal/output"
	"github.com/trafico-pr/trafico-cli/internal/tui"
)

var version = "0.2.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trafico",
	Short: "CLI for live highway travel-time estimates",
	Long: `trafico fetches driving-route estimates (distance, traffic-aware travel
time, computed arrival time) for two configured routes from the Google
Directions API.

Features:
  - One-shot console report for both configured routes
  - Full-screen amber LED board with periodic refresh
  - Ad-hoc queries between arbitrary coordinate pairs
  - JSON output for scripting

Configuration comes from the environment (a .env file is merged if present):
  GOOGLE_MAPS_API_KEY        API key (fallback: key file, default "api_key")
  ROUTE1_NAME                Route 1 display name
  ROUTE1_ORIGIN              "lat,lng" (or ROUTE1_ORIGIN_LAT / ROUTE1_ORIGIN_LNG)
  ROUTE1_DEST                "lat,lng" (or ROUTE1_DEST_LAT / ROUTE1_DEST_LNG)
  ROUTE2_*                   Same variables for route 2
  TRAFFIC_MODEL              best_guess, pessimistic or optimistic
  DISPLAY_REFRESH_SECONDS    Board refresh interval (default 120)

Quick Start:
  1. Launch the LED board:   trafico (or trafico board)
  2. Console report:         trafico routes
  3. Ad-hoc query:           trafico eta 18.27,-66.04 18.34,-66.06`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch the board
		if len(args) == 0 {
			return runBoard(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON         bool
	flagRawJSON      bool
	flagColor        string
	flagDeparture    int64
	flagTrafficModel string
	flagStrict       bool
)

// Routes/board flags
var (
	flagWatch    bool
	flagInterval int
)

func init() {
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(etaCmd)
	rootCmd.AddCommand(boardCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().Int64Var(&flagDeparture, "departure", 0, "Departure time as Unix seconds (default: now)")
	rootCmd.PersistentFlags().StringVar(&flagTrafficModel, "traffic-model", "", "Traffic model: best_guess, pessimistic, optimistic")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail on missing route variables instead of using defaults")

	// Routes-specific flags
	routesCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: re-render at the refresh interval")

	// Board-specific flags
	boardCmd.Flags().IntVar(&flagInterval, "interval", 0, "Refresh interval in seconds (overrides DISPLAY_REFRESH_SECONDS)")
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print estimates for the configured routes",
	Long: `Print distance, travel time and computed arrival time for both
configured routes. A route that fails is reported and the next one is still
queried.

Examples:
  trafico routes
  trafico routes --departure 1756100000
  trafico routes --traffic-model pessimistic
  trafico routes --json
  trafico routes --watch`,
	Args: cobra.NoArgs,
	RunE: runRoutes,
}

var etaCmd = &cobra.Command{
	Use:   "eta <lat,lng> <lat,lng>",
	Short: "Estimate driving time between two coordinates",
	Long: `Estimate driving time between an origin and a destination given as
"lat,lng" pairs (a space also works as separator when quoted).

Examples:
  trafico eta 18.27,-66.04 18.34,-66.06
  trafico eta "18.27 -66.04" "18.34 -66.06" --departure 1756100000`,
	Args: cobra.ExactArgs(2),
	RunE: runETA,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Launch the full-screen LED board",
	Long: `Launch a full-screen two-line amber LED board showing both configured
routes, refreshed periodically. The departure time is fixed for the board
session; without --departure an interactive prompt asks for an optional Unix
timestamp (blank or invalid input means "now").

Keyboard:
  q / Esc / Ctrl+C   Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

// loadConfig loads configuration honoring the global flags.
func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if flagStrict {
		opts = append(opts, config.Strict())
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	if flagTrafficModel != "" {
		if !api.ValidTrafficModel(flagTrafficModel) {
			return nil, fmt.Errorf("unknown traffic model %q (expected one of %s)",
				flagTrafficModel, strings.Join(api.TrafficModels, ", "))
		}
		cfg.TrafficModel = flagTrafficModel
	}
	if flagInterval > 0 {
		cfg.RefreshInterval = time.Duration(flagInterval) * time.Second
	}

	return cfg, nil
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

// departureTime returns the flag value or the current time, in Unix seconds.
func departureTime() int64 {
	if flagDeparture > 0 {
		return flagDeparture
	}
	return time.Now().Unix()
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIKey)

	if flagWatch {
		return runWatch(cfg.RefreshInterval, func() error {
			return reportRoutes(cmd, client, cfg)
		})
	}

	return reportRoutes(cmd, client, cfg)
}

// reportRoutes fetches and renders both configured routes. The departure time
// is re-sampled on every invocation. Per-route failures are rendered and do
// not abort the remaining routes or change the exit code.
func reportRoutes(cmd *cobra.Command, client *api.Client, cfg *config.Config) error {
	ctx := context.Background()
	departure := departureTime()
	colors := output.NewColors(getColorMode())

	type routeReport struct {
		models.RouteDef
		Result *models.RouteResult `json:"result,omitempty"`
		Error  string              `json:"error,omitempty"`
	}
	var reports []routeReport

	for _, def := range cfg.Routes {
		req := api.RouteRequest{
			Origin:        def.Origin,
			Dest:          def.Dest,
			DepartureTime: departure,
			TrafficModel:  cfg.TrafficModel,
		}

		if flagRawJSON {
			raw, err := client.GetRouteRaw(ctx, req)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", def.Name, err)
				continue
			}
			if err := printPrettyJSON(raw); err != nil {
				return err
			}
			continue
		}

		res, err := client.GetRoute(ctx, req)
		if flagJSON {
			report := routeReport{RouteDef: def, Result: res}
			if err != nil {
				report.Error = err.Error()
			}
			reports = append(reports, report)
			continue
		}

		if err != nil {
			output.RenderRouteError(os.Stdout, def, err, output.RenderOptions{Colors: colors})
			continue
		}
		output.RenderRoute(os.Stdout, def, res, output.RenderOptions{Colors: colors})
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	return nil
}

func runETA(cmd *cobra.Command, args []string) error {
	origin, err := models.ParseCoordinate(args[0])
	if err != nil {
		return fmt.Errorf("invalid origin: %w", err)
	}
	dest, err := models.ParseCoordinate(args[1])
	if err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIKey)

	def := models.RouteDef{Name: "Route", Origin: origin, Dest: dest}
	req := api.RouteRequest{
		Origin:        origin,
		Dest:          dest,
		DepartureTime: departureTime(),
		TrafficModel:  cfg.TrafficModel,
	}

	ctx := context.Background()

	if flagRawJSON {
		raw, err := client.GetRouteRaw(ctx, req)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	res, err := client.GetRoute(ctx, req)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	colors := output.NewColors(getColorMode())
	output.RenderRoute(os.Stdout, def, res, output.RenderOptions{Colors: colors})
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIKey)

	departure := flagDeparture
	if departure == 0 {
		departure = promptDeparture()
	}

	model := tui.New(client, cfg, departure)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// promptDeparture asks once for an optional Unix departure timestamp when
// stdin is a terminal. Blank or invalid input means "now" (returned as 0 so
// the board samples the startup time).
func promptDeparture() int64 {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return 0
	}

	fmt.Print("Departure time as Unix seconds (blank = now): ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil || ts <= 0 {
		return 0
	}
	return ts
}

// runWatch runs a continuous refresh loop for watch mode
func runWatch(interval time.Duration, fetchAndRender func() error) error {
	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Hide cursor during watch mode
	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		// Show header with timestamp
		now := time.Now()
		fmt.Printf("Last update: %s | Refresh every %s | Press Ctrl+C to exit\n\n",
			now.Format("15:04:05"), interval)

		// Fetch and render data
		if err := fetchAndRender(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		// Wait for next tick or interrupt
		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(prettyJSON)
}
