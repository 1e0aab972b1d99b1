// Package config resolves benchmark settings from defaults, an
// optional settings file, and command-line flags, in ascending order
// of precedence. It also reconciles the mutually exclusive oneshot and
// dragrace mode selectors, keeping that concern out of the benchmark
// driver.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults for a benchmark run.
const (
	DefaultLimit   = 1000
	DefaultSeconds = 5
)

// Config holds the resolved settings for a benchmark run. It is built
// once at startup and read-only afterwards.
type Config struct {
	Limit    int64
	Seconds  int
	Oneshot  bool
	Dragrace bool
	Quiet    bool
	JSON     bool
}

// Budget returns the wall-clock budget of a timed run. It is ignored
// by oneshot runs and may be zero or negative, in which case a run
// still performs one pass.
func (c Config) Budget() time.Duration {
	return time.Duration(c.Seconds) * time.Second
}

// Load resolves a Config. Values start from the defaults, are
// overridden by the settings file when file is non-empty, and are
// overridden again by any flags changed on the command line.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()

	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("seconds", DefaultSeconds)
	v.SetDefault("oneshot", false)
	v.SetDefault("dragrace", false)
	v.SetDefault("quiet", false)
	v.SetDefault("json", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read settings file: %w", err)
		}
	}

	cfg := Config{
		Limit:    v.GetInt64("limit"),
		Seconds:  v.GetInt("seconds"),
		Oneshot:  v.GetBool("oneshot"),
		Dragrace: v.GetBool("dragrace"),
		Quiet:    v.GetBool("quiet"),
		JSON:     v.GetBool("json"),
	}

	if cfg.Limit < 1 {
		return Config{}, fmt.Errorf("limit must be positive, got %d", cfg.Limit)
	}

	return cfg, nil
}

// Mode identifies one of the two competing run-mode selectors.
type Mode string

// Mode selector values, including the zero value for "neither".
const (
	ModeNone     Mode = ""
	ModeOneshot  Mode = "oneshot"
	ModeDragrace Mode = "dragrace"
)

// ModeResolution is the outcome of reconciling the oneshot and
// dragrace selectors: the effective settings, plus a warning to
// surface when one selector displaced the other.
type ModeResolution struct {
	Oneshot  bool
	Dragrace bool
	Warning  string
}

// ResolveModes reconciles the oneshot and dragrace selectors. The two
// are mutually exclusive as user intent: when both are requested, the
// selector given last wins and the other is cleared. last names the
// selector that appeared last on the command line; when the order is
// unknowable (both selectors came from the settings file), dragrace
// wins, keeping machine-readable output for unattended runs. Warning
// is empty unless a selector was displaced.
func ResolveModes(oneshot, dragrace bool, last Mode) ModeResolution {
	if !oneshot || !dragrace {
		return ModeResolution{Oneshot: oneshot, Dragrace: dragrace}
	}

	selected := last
	if selected == ModeNone {
		selected = ModeDragrace
	}

	res := ModeResolution{
		Warning: fmt.Sprintf(
			"oneshot and dragrace modes are mutually exclusive; selecting %s mode",
			selected,
		),
	}

	if selected == ModeOneshot {
		res.Oneshot = true
	} else {
		res.Dragrace = true
	}

	return res
}

// LastModeSelector reports which of the two mode selectors appears
// last on the command line. args are re-walked against the command's
// flag definitions, so a token that is the value of another flag is
// never read as a selector (-l1000 carries a limit, not a oneshot
// request). Tokens after a bare "--" are positional and never
// inspected.
func LastModeSelector(flags *pflag.FlagSet, args []string) Mode {
	last := ModeNone
	if flags == nil {
		return last
	}

	scan := pflag.NewFlagSet("mode-order", pflag.ContinueOnError)
	scan.AddFlagSet(flags)

	// ParseAll visits flags in command-line order; the callback stands
	// in for value assignment, so the re-walk never mutates the real
	// flags. args already survived the command's own parse, and a
	// failed re-walk just leaves the order unknown.
	_ = scan.ParseAll(args, func(fl *pflag.Flag, _ string) error {
		switch fl.Name {
		case "oneshot":
			last = ModeOneshot
		case "dragrace":
			last = ModeDragrace
		}

		return nil
	})

	return last
}
