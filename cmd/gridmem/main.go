// Package main provides the CLI entrypoint for gridmem.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/verte-zerg/gridmem/internal/alphabet"
	"github.com/verte-zerg/gridmem/internal/config"
	"github.com/verte-zerg/gridmem/internal/feedback"
	"github.com/verte-zerg/gridmem/internal/generator"
	"github.com/verte-zerg/gridmem/internal/model"
	"github.com/verte-zerg/gridmem/internal/settings"
	"github.com/verte-zerg/gridmem/internal/stats"
	"github.com/verte-zerg/gridmem/internal/statsui"
	"github.com/verte-zerg/gridmem/internal/store"
	"github.com/verte-zerg/gridmem/internal/trial"
	"github.com/verte-zerg/gridmem/internal/tui"
)

const (
	defaultWindow   = 10
	defaultFeedback = feedback.KindBell
	hardestInReport = 5
)

var (
	playSize      string
	playMode      string
	playLang      string
	playMix       []string
	playMemorize  int
	playNoTimer   bool
	playVibration bool
	playFeedback  string

	statsSize   int
	statsMode   string
	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridmem",
		Short:         "TUI memory grid trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", config.DefaultConfigPath(), "config file path")
	pf.String("db", config.DefaultDBPath(), "database path")
	pf.String("alphabets", config.DefaultAlphabetsPath(), "custom alphabets file path")
	for _, name := range []string{"config", "db", "alphabets"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			logErrf("failed to bind flag %s: %v\n", name, err)
		}
	}
	viper.SetEnvPrefix("GRIDMEM")
	viper.AutomaticEnv()

	defaults := settings.Defaults()
	flags := rootCmd.Flags()
	flags.StringVar(&playSize, "size", settings.FormatTableSize(defaults.TableSize), "table size (NxN, 3 to 15)")
	flags.StringVar(&playMode, "mode", defaults.Mode.String(), "table mode (Digits, Letters, MixedAlphabets)")
	flags.StringVar(&playLang, "lang", defaults.Language, "alphabet for Letters mode")
	flags.StringSliceVar(&playMix, "mix", nil, "alphabets for MixedAlphabets mode (comma separated)")
	flags.IntVar(&playMemorize, "memorize", defaults.MemorizeSeconds, "memorize phase length in seconds")
	flags.BoolVar(&playNoTimer, "no-timer", defaults.NoTimer, "memorize until space is pressed")
	flags.BoolVar(&playVibration, "vibration", defaults.Vibration, "pulse feedback on key presses")
	flags.StringVar(&playFeedback, "feedback", defaultFeedback, "pulse backend (bell, tone, none)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAlphabetsCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// environment bundles what every command resolves before running.
type environment struct {
	base     model.Settings
	catalog  *alphabet.Catalog
	store    *store.Store
	repo     *settings.Repository
	feedback string
}

func openEnvironment() (*environment, error) {
	fileCfg, err := config.LoadConfig(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	base, err := fileCfg.Game.Apply(settings.Defaults())
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	custom, err := alphabet.LoadFile(viper.GetString("alphabets"))
	if err != nil {
		return nil, fmt.Errorf("failed to load alphabets: %w", err)
	}
	catalog := alphabet.Default().With(custom)

	st, err := store.Open(viper.GetString("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	env := &environment{
		base:     base,
		catalog:  catalog,
		store:    st,
		repo:     settings.NewRepository(st, base),
		feedback: defaultFeedback,
	}
	if fileCfg.Game.Feedback != nil {
		env.feedback = *fileCfg.Game.Feedback
	}
	return env, nil
}

func (e *environment) close() {
	if cerr := e.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	ctx := context.Background()
	current, err := env.repo.Load(ctx)
	if err != nil {
		logErrf("%v; using defaults\n", err)
	}
	next, changed, err := applyPlayFlags(cmd, current, env.catalog)
	if err != nil {
		return err
	}
	if changed {
		if err := env.repo.Save(ctx, next); err != nil {
			logErrf("%v\n", err)
		}
		current = next
	}
	if current.Mode == model.ModeLetters && !env.catalog.Has(current.Language) {
		logErrf("unknown alphabet %q; falling back to %s\n", current.Language, alphabet.Latin)
	}
	kind := env.feedback
	if cmd.Flags().Changed("feedback") {
		kind = playFeedback
	}

	pulser, err := feedback.New(kind)
	if err != nil {
		logErrf("feedback %q unavailable: %v\n", kind, err)
	}
	toggle := feedback.NewToggle(pulser, current.Vibration)

	notifier := tui.NewNotifier()
	machine := trial.New(settings.TrialConfig(current), generator.New(env.catalog),
		trial.WithNotify(notifier.Notify),
		trial.WithFinishHook(func(result model.TrialResult) {
			if _, err := env.store.InsertTrial(ctx, result); err != nil {
				logErrf("failed to save trial: %v\n", err)
			}
		}),
	)
	defer machine.Close()

	env.repo.Observe(func(s model.Settings) {
		machine.Reconfigure(settings.TrialConfig(s))
		toggle.SetEnabled(s.Vibration)
	})

	program := tea.NewProgram(tui.NewModel(machine, env.repo, env.catalog, toggle, notifier), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// applyPlayFlags overlays explicitly set play flags onto s.
func applyPlayFlags(cmd *cobra.Command, s model.Settings, catalog *alphabet.Catalog) (model.Settings, bool, error) {
	flags := cmd.Flags()
	changed := false
	if flags.Changed("size") {
		n, ok := settings.ParseTableSize(playSize)
		if !ok {
			return s, false, fmt.Errorf("--size must look like NxN with N in [%d,%d]", settings.MinTableSize, settings.MaxTableSize)
		}
		s.TableSize = n
		changed = true
	}
	if flags.Changed("mode") {
		m, ok := model.ParseMode(playMode)
		if !ok {
			return s, false, fmt.Errorf("--mode must be one of Digits, Letters, MixedAlphabets")
		}
		s.Mode = m
		changed = true
	}
	if flags.Changed("lang") {
		if !catalog.Has(playLang) {
			return s, false, fmt.Errorf("unknown alphabet %q (see: gridmem alphabets)", playLang)
		}
		s.Language = catalog.Canonical(playLang)
		changed = true
	}
	if flags.Changed("mix") {
		mixed := make([]string, 0, len(playMix))
		for _, id := range playMix {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if !catalog.Has(id) {
				return s, false, fmt.Errorf("unknown alphabet %q (see: gridmem alphabets)", id)
			}
			mixed = append(mixed, catalog.Canonical(id))
		}
		s.MixedAlphabets = settings.SplitMixed(strings.Join(mixed, "|"))
		changed = true
	}
	if flags.Changed("memorize") {
		if playMemorize <= 0 {
			return s, false, fmt.Errorf("--memorize must be > 0")
		}
		s.MemorizeSeconds = playMemorize
		changed = true
	}
	if flags.Changed("no-timer") {
		s.NoTimer = playNoTimer
		changed = true
	}
	if flags.Changed("vibration") {
		s.Vibration = playVibration
		changed = true
	}
	return s, changed, nil
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
	path := viper.GetString("config")
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
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List available alphabets",
		Args:  cobra.NoArgs,
		RunE:  runAlphabetsCmd,
	}
}

func runAlphabetsCmd(cmd *cobra.Command, _ []string) error {
	custom, err := alphabet.LoadFile(viper.GetString("alphabets"))
	if err != nil {
		return fmt.Errorf("failed to load alphabets: %w", err)
	}
	return writeAlphabets(cmd, alphabet.Default().With(custom))
}

func writeAlphabets(cmd *cobra.Command, catalog *alphabet.Catalog) error {
	for _, id := range catalog.Identifiers() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", id, len(catalog.Lookup(id))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show stored settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a single setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runSettingsSetCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget stored settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsResetCmd,
	})
	return cmd
}

func runSettingsCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	current, err := env.repo.Load(context.Background())
	if err != nil {
		return err
	}
	return writeSettings(cmd, current)
}

func writeSettings(cmd *cobra.Command, s model.Settings) error {
	values := settings.Encode(s)
	for _, key := range settings.Keys() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", key, values[key]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runSettingsSetCmd(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	ctx := context.Background()
	if _, err := env.repo.Load(ctx); err != nil {
		return err
	}
	key, value, err := canonicalSetting(env.catalog, args[0], args[1])
	if err != nil {
		return err
	}
	next, err := env.repo.Set(ctx, key, value)
	if err != nil {
		return err
	}
	return writeSettings(cmd, next)
}

// canonicalSetting checks alphabet names against the catalog.
func canonicalSetting(catalog *alphabet.Catalog, key, value string) (string, string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case settings.KeyLanguage:
		if !catalog.Has(value) {
			return key, value, fmt.Errorf("unknown alphabet %q (see: gridmem alphabets)", value)
		}
		return key, catalog.Canonical(value), nil
	case settings.KeyMixedAlphabets:
		ids := settings.SplitMixed(strings.ReplaceAll(value, ",", "|"))
		for i, id := range ids {
			if !catalog.Has(id) {
				return key, value, fmt.Errorf("unknown alphabet %q (see: gridmem alphabets)", id)
			}
			ids[i] = catalog.Canonical(id)
		}
		return key, strings.Join(ids, "|"), nil
	}
	return key, value, settings.Validate(key, value)
}

func runSettingsResetCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.store.DeleteSettings(context.Background()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return writeSettings(cmd, env.base)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsSize, "size", 0, "table size filter (N)")
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N trials")
	cmd.Flags().IntVar(&statsWindow, "window", defaultWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStatsConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return writeStatsReport(cmd, st, cfg)
	}
	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func buildStatsConfig() (model.StatsConfig, error) {
	cfg := model.StatsConfig{Size: statsSize, Last: statsLast, Window: statsWindow}
	if statsSize < 0 {
		return cfg, fmt.Errorf("--size must be >= 0")
	}
	if statsLast < 0 {
		return cfg, fmt.Errorf("--last must be >= 0")
	}
	if statsWindow < 1 {
		return cfg, fmt.Errorf("--window must be >= 1")
	}
	if statsMode != "" {
		mode, ok := model.ParseMode(statsMode)
		if !ok {
			return cfg, fmt.Errorf("--mode must be one of Digits, Letters, MixedAlphabets")
		}
		cfg.Mode = mode.String()
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return cfg, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	return cfg, nil
}

func writeStatsReport(cmd *cobra.Command, src stats.TrialSource, cfg model.StatsConfig) error {
	report, err := stats.BuildReport(context.Background(), src, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	w := cmd.OutOrStdout()
	if err := stats.RenderSummary(w, report.Trials, cfg.Window); err != nil {
		return err
	}
	if len(report.Trials) == 0 {
		return nil
	}
	if err := stats.RenderCurve(w, "Accuracy", stats.AccuracySeries(report.Trials, cfg.Window), 0); err != nil {
		return err
	}
	if err := stats.RenderSymbolTable(w, report.SymbolsWindow); err != nil {
		return err
	}
	if hardest := stats.HardestSymbols(report.SymbolsWindow, hardestInReport); len(hardest) > 0 {
		if _, err := fmt.Fprintf(w, "Hardest: %s\n", strings.Join(hardest, " ")); err != nil {
			return err
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	d := settings.Defaults()
	return fmt.Sprintf(`# gridmem configuration
# Uncomment a value to enable it. Stored settings and CLI flags override config values.

[game]
# table-size = %d            # Table side length (3-15)
# mode = %q           # Digits, Letters or MixedAlphabets
# language = %q       # Alphabet for Letters mode (see: gridmem alphabets)
# mixed-alphabets = []       # Alphabets for MixedAlphabets mode
# memorize-seconds = %d      # Memorize phase length
# no-timer = %s          # Memorize until space is pressed
# vibration = %s          # Pulse feedback on key presses
# dark-theme = %s        # Start with the dark theme
# feedback = %q          # Pulse backend: bell, tone or none
`,
		d.TableSize,
		d.Mode.String(),
		d.Language,
		d.MemorizeSeconds,
		strconv.FormatBool(d.NoTimer),
		strconv.FormatBool(d.Vibration),
		strconv.FormatBool(d.DarkTheme),
		defaultFeedback,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
