// Package main provides the CLI entrypoint for fittrack.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/fittrack/internal/batch"
	"github.com/verte-zerg/fittrack/internal/config"
	"github.com/verte-zerg/fittrack/internal/historyui"
	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/sensor"
	"github.com/verte-zerg/fittrack/internal/stats"
	"github.com/verte-zerg/fittrack/internal/store"
	"github.com/verte-zerg/fittrack/internal/training"
)

const (
	defaultWorkers     = 4
	defaultTrendWindow = 5
)

var (
	trackerJournal bool
	trackerWorkers int
	trackerDBPath  string
	verbose        bool

	historyType  string
	historyLast  int
	historyPlain bool

	statsType   string
	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg(rootCmd.Name())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "fittrack",
		Short:             "Fitness tracker workout summaries",
		Long:              "Computes distance, mean speed and spent calories for running, walking and swimming sensor packages.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		RunE:              runBatchCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&trackerJournal, "journal", true, "record summaries in the journal")
	rootCmd.PersistentFlags().IntVar(&trackerWorkers, "workers", defaultWorkers, "number of packages summarized concurrently")
	rootCmd.PersistentFlags().StringVar(&trackerDBPath, "db", config.DefaultDBPath(), "journal database path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        cmd.ErrOrStderr(),
			NoColor:    !isTerminal(cmd.ErrOrStderr()),
			TimeFormat: time.RFC3339,
		},
	)
	return nil
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	pkgs := configuredPackages(fileCfg)
	if len(pkgs) == 0 {
		log.Debug().Msg("no packages configured; using demo batch")
		pkgs = sensor.DemoPackages()
	}
	log.Debug().Int("packages", len(pkgs)).Int("workers", cfg.Workers).Msg("processing batch")

	results, err := batch.Process(cmd.Context(), pkgs, cfg.Workers)
	if err != nil {
		return err
	}
	return emit(cmd, cfg, results)
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report CODE [VALUE...]",
		Short: "Summarize a single sensor package",
		Long: "Summarize a single sensor package. Values by code:\n" +
			"  RUN action duration weight\n" +
			"  WLK action duration weight height\n" +
			"  SWM action duration weight length_pool count_pool",
		Args: cobra.MinimumNArgs(1),
		RunE: runReportCmd,
	}
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	code := strings.ToUpper(strings.TrimSpace(args[0]))
	data, err := sensor.ParseArgs(args[1:])
	if err != nil {
		return err
	}
	pkg := sensor.Package{Code: code, Data: data}
	info, err := batch.Summarize(pkg)
	if err != nil {
		return err
	}
	return emit(cmd, cfg, []batch.Result{{Package: pkg, Info: info}})
}

func emit(cmd *cobra.Command, cfg model.Config, results []batch.Result) error {
	out := cmd.OutOrStdout()
	for _, r := range results {
		if _, err := fmt.Fprintln(out, r.Info.Message()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if !cfg.Journal {
		return nil
	}
	return withStore(cfg, func(st *store.Store) error {
		runID := batch.NewRunID()
		ids, err := st.InsertSummaries(cmd.Context(), batch.Summaries(runID, time.Now(), results))
		if err != nil {
			return fmt.Errorf("failed to write journal: %w", err)
		}
		log.Debug().Str("run", runID).Int("rows", len(ids)).Msg("journal updated")
		return nil
	})
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse journaled summaries",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyType, "type", "", "training type or code filter")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N workouts")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain table instead of the browser")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	filter, err := historyFilter(historyType, historyLast)
	if err != nil {
		return err
	}
	return withStore(cfg, func(st *store.Store) error {
		if historyPlain || !isTerminal(cmd.OutOrStdout()) {
			summaries, err := st.ListSummaries(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to list journal: %w", err)
			}
			return stats.RenderHistory(cmd.OutOrStdout(), summaries)
		}
		program := tea.NewProgram(historyui.NewModel(st, filter), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	})
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-type totals",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsType, "type", "", "training type or code filter")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N workouts")
	cmd.Flags().IntVar(&statsWindow, "window", defaultTrendWindow, "moving average window for the calories trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	filter, err := historyFilter(statsType, statsLast)
	if err != nil {
		return err
	}
	if statsWindow < 0 {
		return fmt.Errorf("--window must be >= 0")
	}
	return withStore(cfg, func(st *store.Store) error {
		report, err := stats.BuildReport(cmd.Context(), st, filter)
		if err != nil {
			return fmt.Errorf("failed to build stats: %w", err)
		}
		if err := stats.RenderTotals(cmd.OutOrStdout(), report.Aggregates); err != nil {
			return err
		}
		return stats.RenderTrend(cmd.OutOrStdout(), report.Summaries, statsWindow)
	})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		log.Info().Str("file", path).Msg("config created")
	}
	return nil
}

func loadSettings(cmd *cobra.Command) (config.FileConfig, model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "journal", &trackerJournal, fileCfg.Tracker.Journal)
	applyIntConfig(cmd, "workers", &trackerWorkers, fileCfg.Tracker.Workers)
	applyStringConfig(cmd, "db", &trackerDBPath, fileCfg.Tracker.DBPath)

	cfg := model.Config{
		Journal: trackerJournal,
		Workers: trackerWorkers,
		DBPath:  trackerDBPath,
	}
	if err := validateConfig(cfg); err != nil {
		return config.FileConfig{}, model.Config{}, err
	}
	return fileCfg, cfg, nil
}

func configuredPackages(fileCfg config.FileConfig) []sensor.Package {
	pkgs := make([]sensor.Package, 0, len(fileCfg.Packages))
	for _, p := range fileCfg.Packages {
		pkgs = append(pkgs, sensor.Package{Code: p.Code, Data: p.Data})
	}
	return pkgs
}

func withStore(cfg model.Config, fn func(st *store.Store) error) error {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close db")
		}
	}()
	return fn(st)
}

func historyFilter(kind string, last int) (model.HistoryFilter, error) {
	if last < 0 {
		return model.HistoryFilter{}, fmt.Errorf("--last must be >= 0")
	}
	trainingType, err := resolveTrainingType(kind)
	if err != nil {
		return model.HistoryFilter{}, err
	}
	return model.HistoryFilter{TrainingType: trainingType, Last: last}, nil
}

// resolveTrainingType accepts either a workout code or a training type name.
func resolveTrainingType(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if training.Kind(value).Valid() {
		return value, nil
	}
	kind, err := sensor.KindOf(strings.ToUpper(value))
	if err != nil {
		return "", fmt.Errorf("--type: %w", err)
	}
	return kind.String(), nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fittrack configuration
# Uncomment a value to enable it. CLI flags override config values.

[tracker]
# journal = true          # Record summaries in the journal
# workers = %d             # Packages summarized concurrently
# db-path = %q

# Packages processed by a bare "fittrack" run. The demo batch is used when
# none are listed.
#
# [[packages]]
# code = "SWM"            # action, duration, weight, length_pool, count_pool
# data = [720, 1, 80, 25, 40]
#
# [[packages]]
# code = "RUN"            # action, duration, weight
# data = [15000, 1, 75]
#
# [[packages]]
# code = "WLK"            # action, duration, weight, height
# data = [9000, 1, 75, 180]
`,
		defaultWorkers,
		config.DefaultDBPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be > 0")
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("--db must not be empty")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
