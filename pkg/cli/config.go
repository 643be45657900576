package cli

import (
	"fmt"
	"strings"

	"github.com/gcat/gcat/internal/engine"
	"github.com/gcat/gcat/pkg/convergence"
	"github.com/gcat/gcat/pkg/types"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration that is known before any command runs
type Config struct {
	ConfigFile  string
	ProjectRoot string
	Verbosity   string
	LogFile     string
	Version     string
	NoColor     bool
}

// NewConfig creates a new CLI configuration with defaults
func NewConfig() *Config {
	return &Config{
		ProjectRoot: ".",
		Verbosity:   "info",
	}
}

// Setting keys shared by flags, the GCAT_ environment and gcat.yaml
const (
	keyVerbosity   = "verbosity"
	keyLogFile     = "log-file"
	keyFormat      = "format"
	keySafety      = "safety"
	keyOmega       = "omega"
	keyTolerance   = "tol"
	keyMaxIter     = "max-iter"
	keyMaxResidual = "max-residual"
	keyParallelism = "parallelism"
	keyFailFast    = "fail-fast"
	keyNotify      = "notify"
)

// newViper creates the settings store: GCAT_ environment variables with
// dashes mapped to underscores, e.g. GCAT_MAX_ITER.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyFormat, string(types.OutputFormatText))
	v.SetDefault(keyParallelism, 0)
	return v
}

// bindFlags binds the named flags of a command to their settings keys
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(key)
		if f == nil {
			return fmt.Errorf("unknown flag %q", key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", key, err)
		}
	}
	return nil
}

// applySolverSettings overrides the study solver configuration with every
// solver setting given by flag, environment or config file.
func applySolverSettings(v *viper.Viper, study *types.Study) {
	if study.Solver == nil {
		study.Solver = &types.SolverConfig{}
	}
	s := study.Solver
	if v.IsSet(keySafety) {
		fs := v.GetFloat64(keySafety)
		s.SafetyFactor = &fs
	}
	if v.IsSet(keyOmega) {
		omega := v.GetFloat64(keyOmega)
		s.Omega = &omega
	}
	if v.IsSet(keyTolerance) {
		tol := v.GetFloat64(keyTolerance)
		s.Tolerance = &tol
	}
	if v.IsSet(keyMaxIter) {
		n := v.GetInt(keyMaxIter)
		s.MaxIterations = &n
	}
	if v.IsSet(keyMaxResidual) {
		r := v.GetFloat64(keyMaxResidual)
		s.MaxResidual = &r
	}
}

// engineSettings resolves the analyzer knobs
func engineSettings(v *viper.Viper) engine.Settings {
	return engine.Settings{
		Parallelism:         v.GetInt(keyParallelism),
		FailFast:            v.GetBool(keyFailFast),
		AsymptoticTolerance: engine.DefaultAsymptoticTolerance,
		Notify:              v.GetBool(keyNotify),
	}
}

// addSolverFlags registers the solver flags; defaults are shown for help
// only, unset flags leave the study file values untouched.
func addSolverFlags(flags *pflag.FlagSet) {
	flags.Float64(keySafety, convergence.DefaultSafetyFactor, "GCI safety factor")
	flags.Float64(keyOmega, convergence.DefaultOmega, "relaxation factor of the order solver, in [0, 1]")
	flags.Float64(keyTolerance, convergence.DefaultTolerance, "convergence tolerance of the order solver")
	flags.Int(keyMaxIter, convergence.DefaultMaxIterations, "maximum solver iterations")
	flags.Float64(keyMaxResidual, convergence.DefaultMaxResidual, "maximum allowed solver residual")
}
