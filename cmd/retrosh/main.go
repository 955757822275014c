package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/retrosh/internal/audio"
	"github.com/san-kum/retrosh/internal/automation"
	"github.com/san-kum/retrosh/internal/config"
	"github.com/san-kum/retrosh/internal/console"
	"github.com/san-kum/retrosh/internal/logs"
	"github.com/san-kum/retrosh/internal/profile"
	"github.com/san-kum/retrosh/internal/store"
	"github.com/san-kum/retrosh/internal/theme"
	"github.com/san-kum/retrosh/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logFile    string
	logLevel   string
	themeName  string
	preset     string
	noBoot     bool
	mute       bool
	animate    bool
	exportPath string
	scriptPath string
	plotWidth  int
	plotHeight int
)

// main registers the command tree and runs the interactive terminal when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "retrosh",
		Short:        "retro terminal simulator",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "initial theme")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "timing preset")
	rootCmd.Flags().BoolVar(&noBoot, "no-boot", false, "skip the boot sequence")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable the boot sound")

	runCmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "run commands without the full screen UI and print the transcript",
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&animate, "animate", false, "replay the typewriter effect with real delays")
	runCmd.Flags().StringVar(&exportPath, "export", "", "export the transcript (.json or .csv)")
	runCmd.Flags().StringVar(&scriptPath, "script", "", "run a scenario file (yaml) before the arguments")

	commandsCmd := &cobra.Command{
		Use:   "commands",
		Short: "list console commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tLINES\tEFFECT")
			for _, c := range console.Commands() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", c.Name, len(c.Lines), c.Effect)
			}
			fmt.Fprintln(w, "clear\t-\tnone")
			fmt.Fprintln(w, "theme <name>\t-\tnone")
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range theme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list timing presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tCHAR\tLINE\tPROGRESS")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%v\t%v\t+%d/%v\n", name, p.Typewrite.CharDelay, p.Typewrite.LineDelay, p.Boot.ProgressStep, p.Boot.ProgressInterval)
			}
			w.Flush()
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile [command]",
		Short: "show how long a command takes to reveal",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	profileCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "retrosh.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, commandsCmd, themesCmd, presetsCmd, profileCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file, preset and flags, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if themeName != "" {
		if _, err := theme.Lookup(themeName); err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(theme.Names(), ", "))
		}
		cfg.Theme = themeName
	}
	if noBoot {
		cfg.SkipBoot = true
	}
	if mute {
		cfg.Sound = false
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := logs.New(logs.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	var cue audio.Cue = audio.Silent{}
	if cfg.Sound {
		b := audio.NewBeeper(logger)
		defer b.Close()
		if err := b.Open(); err == nil {
			cue = b
		}
	}

	logger.Info("starting terminal", "theme", cfg.Theme, "skip_boot", cfg.SkipBoot)
	return tui.Run(tui.Options{Config: cfg, Cue: cue, Logger: logger})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := logs.New(logs.Options{File: cfg.Log.File, Stderr: true, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cfg.ConsoleOptions()
	opts.Logger = logger
	c := console.New(opts)

	p := &printer{w: cmd.OutOrStdout()}
	settle := func(ctx context.Context, c *console.Console) error {
		return play(ctx, c, p, animate)
	}

	c.Start()
	if err := settle(ctx, c); err != nil {
		return err
	}
	if scriptPath != "" {
		sc, err := automation.LoadScenario(scriptPath)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
		logger.Info("running scenario", "name", sc.Name, "steps", len(sc.Steps))
		if _, err := automation.RunScenario(ctx, sc, c, settle); err != nil {
			p.finish()
			return err
		}
	}
	for _, line := range args {
		logger.Debug("running command", "command", line)
		c.Submit(line)
		if err := settle(ctx, c); err != nil {
			return err
		}
	}
	p.finish()

	if exportPath != "" {
		if err := store.Export(exportPath, store.Snapshot(c)); err != nil {
			return fmt.Errorf("export transcript: %w", err)
		}
		logger.Info("transcript exported", "path", exportPath)
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := profile.Run(args[0], cfg.Typewrite.CharDelay, cfg.Typewrite.LineDelay)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "command:  %s\n", res.Command)
	fmt.Fprintf(out, "lines:    %d\n", res.Lines)
	fmt.Fprintf(out, "runes:    %d\n", res.Runes)
	fmt.Fprintf(out, "steps:    %d\n", res.Steps)
	fmt.Fprintf(out, "duration: %v\n\n", res.Duration)
	fmt.Fprintln(out, res.Plot(plotWidth, plotHeight))
	return nil
}
