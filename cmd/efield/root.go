package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/efield"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const envPrefix = "EFIELD"

// cli holds the state shared by all subcommands for one invocation.
type cli struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	logFile  string
	logOut   io.Writer

	log *zap.Logger
	cfg efield.Config
}

func newCLI(logOut io.Writer) *cli {
	return &cli{v: viper.New(), logOut: logOut}
}

// rootCmd builds the command tree. Running the root command opens the window.
func (c *cli) rootCmd() *cobra.Command {
	var scriptPath string

	root := &cobra.Command{
		Use:           "efield",
		Short:         "Interactive 2D electric field visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initialize()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindow(scriptPath)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.cfgFile, "config", "c", "", "config file (default is ./efield.yaml, then ~/.config/efield/efield.yaml)")
	pf.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&c.logFile, "log-file", "", "also write JSON logs to this file, rotated by size")
	pf.Int("width", 0, "window width")
	pf.Int("height", 0, "window height")
	pf.Int("workers", 0, "goroutines used to trace field lines")
	pf.Bool("outward", false, "trace lines away from negative charges")
	pf.Bool("debug", false, "print frame statistics to stderr")
	root.Flags().Bool("show-fps", false, "show the FPS/TPS overlay")
	root.Flags().StringVar(&scriptPath, "script", "", "YAML or JSON input script to replay")

	c.bindFlag("width", pf.Lookup("width"))
	c.bindFlag("height", pf.Lookup("height"))
	c.bindFlag("workers", pf.Lookup("workers"))
	c.bindFlag("outward_lines", pf.Lookup("outward"))
	c.bindFlag("debug", pf.Lookup("debug"))
	c.bindFlag("show_fps", root.Flags().Lookup("show-fps"))

	root.AddCommand(c.probeCmd(), c.configCmd())
	return root
}

func (c *cli) bindFlag(key string, f *pflag.Flag) {
	// Lookup only fails for a flag that was never registered above.
	if err := c.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// initialize sets up logging, then loads and validates the configuration.
func (c *cli) initialize() error {
	log, err := newLogger(c.logLevel, c.logOut, c.logFile)
	if err != nil {
		return err
	}
	c.log = log

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log.Debug("configuration loaded",
		zap.String("file", c.v.ConfigFileUsed()),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("charges", len(cfg.Charges)),
		zap.Int("workers", cfg.Workers))
	return nil
}

// loadConfig layers defaults, the config file, EFIELD_* variables and flags.
func (c *cli) loadConfig() (efield.Config, error) {
	v := c.v
	if err := setDefaults(v, efield.DefaultConfig()); err != nil {
		return efield.Config{}, err
	}

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "efield"))
		}
		v.SetConfigName("efield")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only the implicit ./efield.yaml may be absent.
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return efield.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := efield.DefaultConfig()
	// The merged settings always carry a charge list; decode it fresh.
	cfg.Charges = nil
	if err := v.Unmarshal(&cfg); err != nil {
		return efield.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return efield.Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every Config key with v so that environment
// variables can override keys that no file or flag mentions.
func setDefaults(v *viper.Viper, cfg efield.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode defaults: %w", err)
	}
	for k, val := range m {
		v.SetDefault(k, val)
	}
	return nil
}

// runWindow opens the visualizer and blocks until it exits.
func (c *cli) runWindow(scriptPath string) error {
	app, err := efield.NewApp(c.cfg)
	if err != nil {
		return err
	}
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := efield.LoadScript(data)
		if err != nil {
			return err
		}
		app.SetScript(runner)
		c.log.Info("script loaded", zap.String("path", scriptPath))
	}
	app.OnScreenshot = func(path string) {
		c.log.Info("screenshot saved", zap.String("path", path))
	}

	c.log.Info("starting",
		zap.String("title", c.cfg.Title),
		zap.Int("width", c.cfg.Width),
		zap.Int("height", c.cfg.Height))
	if err := app.Run(); err != nil {
		return err
	}
	c.log.Info("window closed")
	return nil
}
