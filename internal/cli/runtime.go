package cli

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/eigenkit/internal/config"
	"github.com/katalvlaran/eigenkit/internal/logging"
)

// Option configures the commands built by this package.
type Option func(*options)

type options struct {
	fs afero.Fs
}

// WithFs sets the filesystem matrix files are read from. The default is the
// operating system's filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{fs: afero.NewOsFs()}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// flag names shared by every command
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"
	flagColor     = "color"
)

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	flagLogLevel:  "log.level",
	flagLogFormat: "log.format",
	flagOutput:    "output.format",
	flagColor:     "output.color",
	flagDelimiter: "matrix.delimiter",
	flagDebounce:  "watch.debounce",
	flagDerived:   "ode.show_derived",
}

// addCommonFlags registers the flags every program understands.
func addCommonFlags(fs *pflag.FlagSet) {
	fs.String(flagConfig, "", "config file (default $HOME/.config/eigenkit/config.yaml)")
	fs.String(flagLogLevel, "", "log level: debug, info, warn, error")
	fs.String(flagLogFormat, "", "log format: text, json")
	fs.StringP(flagOutput, "o", "", "output format: text, yaml, json")
	fs.String(flagColor, "", "colour headings: auto, always, never")
}

// runtime is everything a command needs once flags have been parsed.
type runtime struct {
	fs    afero.Fs
	cfg   *config.Config
	log   *logging.Logger
	style *styler
}

// newRuntime loads configuration with flag overrides applied and prepares
// the logger (on stderr) and the heading styler (for stdout).
func newRuntime(cmd *cobra.Command, o options) (*runtime, error) {
	flags := cmd.Flags()

	cfgFile, _ := flags.GetString(flagConfig)
	v, err := config.New(cfgFile)
	if err != nil {
		return nil, err
	}
	if err = bindFlags(v, flags); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Output.Color = strings.ToLower(cfg.Output.Color)

	runID := uuid.NewString()
	log := logging.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).
		WithRun(runID).
		WithCommand(cmd.Name())
	log.Debug("configuration loaded",
		"config_file", v.ConfigFileUsed(),
		"output", cfg.Output.Format,
		"color", cfg.Output.Color,
	)

	return &runtime{
		fs:    o.fs,
		cfg:   cfg,
		log:   log,
		style: newStyler(cmd.OutOrStdout(), cfg.Output.Color),
	}, nil
}

// bindFlags lets explicitly set flags override file and environment values.
// Flags the command does not define are skipped.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}
