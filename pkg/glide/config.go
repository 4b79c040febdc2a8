package glide

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/glide/pkg/glide/constants"
	"github.com/BrandonKowalski/glide/pkg/glide/internal"
)

// Duration is a time.Duration that decodes from TOML strings like "400ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of the controller. The values are feel, not
// contract; DefaultConfig carries the tuned defaults.
type Config struct {
	EaseFactor         float64 `toml:"ease_factor"`         // Fraction of the remaining distance covered per frame
	Epsilon            float64 `toml:"epsilon"`             // Drift stops once |target-current| drops below this
	PrecisionSpeed     float64 `toml:"precision_speed"`     // Gain for trackpad (precision) wheel input
	WheelSpeed         float64 `toml:"wheel_speed"`         // Gain for discrete wheel input
	PrecisionThreshold float64 `toml:"precision_threshold"` // Pixel deltas below this count as precision input
	DragGain           float64 `toml:"drag_gain"`           // Finger travel amplification while touching
	MomentumGain       float64 `toml:"momentum_gain"`       // Release velocity (px/ms) multiplier
	KeyStep            float64 `toml:"key_step"`            // Arrow/Space step as a fraction of the viewport
	PageStep           float64 `toml:"page_step"`           // PageUp/PageDown step as a fraction of the viewport
	NavbarOffset       float64 `toml:"navbar_offset"`       // Anchor landing offset in pixels

	TweenMinDuration     Duration `toml:"tween_min_duration"`
	TweenMaxDuration     Duration `toml:"tween_max_duration"`
	TweenDistanceDivisor float64  `toml:"tween_distance_divisor"` // Pixels travelled per second of tween
	TweenCurve           string   `toml:"tween_curve"`

	ScrollToTopDuration Duration `toml:"scroll_to_top_duration"`
	ScrollToTopCurve    string   `toml:"scroll_to_top_curve"`

	HistoryLimit int `toml:"history_limit"` // Anchor jumps remembered for Back; 0 keeps all
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		EaseFactor:           constants.DefaultEaseFactor,
		Epsilon:              constants.DefaultEpsilon,
		PrecisionSpeed:       constants.DefaultPrecisionSpeed,
		WheelSpeed:           constants.DefaultWheelSpeed,
		PrecisionThreshold:   constants.DefaultPrecisionThreshold,
		DragGain:             constants.DefaultDragGain,
		MomentumGain:         constants.DefaultMomentumGain,
		KeyStep:              constants.DefaultKeyStep,
		PageStep:             constants.DefaultPageStep,
		NavbarOffset:         constants.DefaultNavbarOffset,
		TweenMinDuration:     Duration{constants.DefaultTweenMinDuration},
		TweenMaxDuration:     Duration{constants.DefaultTweenMaxDuration},
		TweenDistanceDivisor: constants.DefaultTweenDivisor,
		TweenCurve:           constants.DefaultTweenCurve,
		ScrollToTopDuration:  Duration{constants.DefaultScrollToTopDuration},
		ScrollToTopCurve:     constants.DefaultScrollToTopCurve,
		HistoryLimit:         32,
	}
}

// IsZero reports whether no field has been set.
func (c Config) IsZero() bool {
	return c == Config{}
}

// LoadConfig decodes a TOML file over the defaults and validates the result.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("glide: load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Ignoring unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	errOutOfRange   = errors.New("out of range")
	errUnknownCurve = errors.New("unknown curve")
)

// Validate checks the tunables for values that would break convergence or
// the two-tier wheel behaviour.
func (c Config) Validate() error {
	switch {
	case c.EaseFactor <= 0 || c.EaseFactor > 1:
		return &ConfigError{Field: "ease_factor", Err: fmt.Errorf("%w: %v not in (0, 1]", errOutOfRange, c.EaseFactor)}
	case c.Epsilon <= 0:
		return &ConfigError{Field: "epsilon", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.Epsilon)}
	case c.PrecisionSpeed <= 0:
		return &ConfigError{Field: "precision_speed", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.PrecisionSpeed)}
	case c.WheelSpeed <= 0:
		return &ConfigError{Field: "wheel_speed", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.WheelSpeed)}
	case c.PrecisionThreshold < 0:
		return &ConfigError{Field: "precision_threshold", Err: fmt.Errorf("%w: %v is negative", errOutOfRange, c.PrecisionThreshold)}
	case c.DragGain <= 1:
		return &ConfigError{Field: "drag_gain", Err: fmt.Errorf("%w: %v must exceed 1", errOutOfRange, c.DragGain)}
	case c.MomentumGain < 0:
		return &ConfigError{Field: "momentum_gain", Err: fmt.Errorf("%w: %v is negative", errOutOfRange, c.MomentumGain)}
	case c.KeyStep <= 0:
		return &ConfigError{Field: "key_step", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.KeyStep)}
	case c.PageStep <= 0:
		return &ConfigError{Field: "page_step", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.PageStep)}
	case c.TweenMinDuration.Duration < 0:
		return &ConfigError{Field: "tween_min_duration", Err: fmt.Errorf("%w: %v is negative", errOutOfRange, c.TweenMinDuration)}
	case c.TweenMaxDuration.Duration < c.TweenMinDuration.Duration:
		return &ConfigError{Field: "tween_max_duration", Err: fmt.Errorf("%w: %v below minimum %v", errOutOfRange, c.TweenMaxDuration, c.TweenMinDuration)}
	case c.TweenDistanceDivisor <= 0:
		return &ConfigError{Field: "tween_distance_divisor", Err: fmt.Errorf("%w: %v must be positive", errOutOfRange, c.TweenDistanceDivisor)}
	case c.ScrollToTopDuration.Duration < 0:
		return &ConfigError{Field: "scroll_to_top_duration", Err: fmt.Errorf("%w: %v is negative", errOutOfRange, c.ScrollToTopDuration)}
	case c.HistoryLimit < 0:
		return &ConfigError{Field: "history_limit", Err: fmt.Errorf("%w: %v is negative", errOutOfRange, c.HistoryLimit)}
	}

	if _, ok := internal.CurveByName(c.TweenCurve); !ok {
		return &ConfigError{Field: "tween_curve", Err: fmt.Errorf("%w %q", errUnknownCurve, c.TweenCurve)}
	}
	if _, ok := internal.CurveByName(c.ScrollToTopCurve); !ok {
		return &ConfigError{Field: "scroll_to_top_curve", Err: fmt.Errorf("%w %q", errUnknownCurve, c.ScrollToTopCurve)}
	}
	return nil
}

// TweenDuration returns how long a tween covering distance pixels takes.
func (c Config) TweenDuration(distance float64) time.Duration {
	return internal.TweenDuration(distance, c.TweenDistanceDivisor, c.TweenMinDuration.Duration, c.TweenMaxDuration.Duration)
}

func (c Config) wheelGain() internal.WheelGain {
	return internal.WheelGain{Precision: c.PrecisionSpeed, Discrete: c.WheelSpeed}
}

func (c Config) curve(name string) internal.Curve {
	if curve, ok := internal.CurveByName(name); ok {
		return curve
	}
	return internal.DefaultCurve
}

// CurveNames lists the easing curves accepted by tween_curve and
// scroll_to_top_curve.
func CurveNames() []string {
	return internal.CurveNames()
}
