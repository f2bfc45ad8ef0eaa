// Package config loads overlay layout and appearance from a file.
package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/phanxgames/minimap"
)

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// GestureConfig holds pointer gesture tuning.
type GestureConfig struct {
	Timeout   time.Duration `json:"timeout" mapstructure:"timeout"`
	ZoneSize  float64       `json:"zoneSize" mapstructure:"zoneSize"`
	MinWidth  float64       `json:"minWidth" mapstructure:"minWidth"`
	MinHeight float64       `json:"minHeight" mapstructure:"minHeight"`
}

// PulseConfig holds click pulse settings.
type PulseConfig struct {
	Enabled  bool          `json:"enabled" mapstructure:"enabled"`
	Duration time.Duration `json:"duration" mapstructure:"duration"`
}

// AppearanceConfig mirrors minimap.Appearance with colors as hex strings
// ("#rgb", "#rrggbb" or "#rrggbbaa").
type AppearanceConfig struct {
	Background            string  `json:"background" mapstructure:"background"`
	BackgroundStroke      string  `json:"backgroundStroke" mapstructure:"backgroundStroke"`
	BackgroundStrokeWidth float64 `json:"backgroundStrokeWidth" mapstructure:"backgroundStrokeWidth"`
	BackgroundOpacity     float64 `json:"backgroundOpacity" mapstructure:"backgroundOpacity"`
	Frame                 string  `json:"frame" mapstructure:"frame"`
	FrameWidth            float64 `json:"frameWidth" mapstructure:"frameWidth"`
	FrameOpacity          float64 `json:"frameOpacity" mapstructure:"frameOpacity"`
	ZIndex                int     `json:"zIndex" mapstructure:"zIndex"`
	AnchorFill            string  `json:"anchorFill" mapstructure:"anchorFill"`
	AnchorStroke          string  `json:"anchorStroke" mapstructure:"anchorStroke"`
	AnchorStrokeWidth     float64 `json:"anchorStrokeWidth" mapstructure:"anchorStrokeWidth"`
	AnchorRadius          float64 `json:"anchorRadius" mapstructure:"anchorRadius"`
	Pulse                 string  `json:"pulse" mapstructure:"pulse"`
	PulseRadius           float64 `json:"pulseRadius" mapstructure:"pulseRadius"`
}

// Settings is the file representation of an overlay.
type Settings struct {
	LogLevel          string           `json:"logLevel" mapstructure:"logLevel"`
	Debug             bool             `json:"debug" mapstructure:"debug"`
	Size              SizeConfig       `json:"size" mapstructure:"size"`
	Anchor            string           `json:"anchor" mapstructure:"anchor"`
	Margin            float64          `json:"margin" mapstructure:"margin"`
	YAxis             string           `json:"yAxis" mapstructure:"yAxis"`
	Gesture           GestureConfig    `json:"gesture" mapstructure:"gesture"`
	AnchorMarker      bool             `json:"anchorMarker" mapstructure:"anchorMarker"`
	RepositionOnClick bool             `json:"repositionOnClick" mapstructure:"repositionOnClick"`
	Pulse             PulseConfig      `json:"pulse" mapstructure:"pulse"`
	Appearance        AppearanceConfig `json:"appearance" mapstructure:"appearance"`
}

// EnvPrefix prefixes environment overrides: MINIMAP_ANCHOR, MINIMAP_SIZE_WIDTH.
const EnvPrefix = "MINIMAP"

// setDefaults registers the default value of every key.
func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)

	viper.SetDefault("size.width", 200)
	viper.SetDefault("size.height", 150)
	viper.SetDefault("anchor", minimap.AnchorBottomRight.String())
	viper.SetDefault("margin", minimap.DefaultMargin)
	viper.SetDefault("yAxis", minimap.YDown.String())

	viper.SetDefault("gesture.timeout", minimap.DefaultGestureTimeout.String())
	viper.SetDefault("gesture.zoneSize", minimap.DefaultZoneSize)
	viper.SetDefault("gesture.minWidth", minimap.DefaultMinSize.Width)
	viper.SetDefault("gesture.minHeight", minimap.DefaultMinSize.Height)

	viper.SetDefault("anchorMarker", false)
	viper.SetDefault("repositionOnClick", false)
	viper.SetDefault("pulse.enabled", false)
	viper.SetDefault("pulse.duration", "350ms")

	viper.SetDefault("appearance.background", "#000000")
	viper.SetDefault("appearance.backgroundStroke", "#ffffff")
	viper.SetDefault("appearance.backgroundStrokeWidth", 1)
	viper.SetDefault("appearance.backgroundOpacity", 0.6)
	viper.SetDefault("appearance.frame", "#ffffff")
	viper.SetDefault("appearance.frameWidth", 1)
	viper.SetDefault("appearance.frameOpacity", 0.9)
	viper.SetDefault("appearance.zIndex", 100)
	viper.SetDefault("appearance.anchorFill", "#3380ff")
	viper.SetDefault("appearance.anchorStroke", "#ffffff")
	viper.SetDefault("appearance.anchorStrokeWidth", 1)
	viper.SetDefault("appearance.anchorRadius", 3)
	viper.SetDefault("appearance.pulse", "#ffffff")
	viper.SetDefault("appearance.pulseRadius", 6)
}

// Load reads settings from path, on top of the defaults. The format follows
// the file extension (json, yaml, toml). An empty path loads the defaults
// and environment overrides only.
func Load(path string) (Settings, error) {
	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}

// Axis parses the YAxis setting.
func (s Settings) Axis() (minimap.YAxis, error) {
	switch strings.ToLower(s.YAxis) {
	case "", "down":
		return minimap.YDown, nil
	case "up":
		return minimap.YUp, nil
	}
	return minimap.YDown, fmt.Errorf("invalid yAxis %q: want \"down\" or \"up\"", s.YAxis)
}

// AnchorPreset parses the Anchor setting.
func (s Settings) AnchorPreset() (minimap.Anchor, error) {
	a, ok := minimap.ParseAnchor(strings.ToLower(s.Anchor))
	if !ok {
		return a, fmt.Errorf("invalid anchor %q", s.Anchor)
	}
	return a, nil
}

// OverlaySize returns the configured overlay size.
func (s Settings) OverlaySize() minimap.Size {
	return minimap.Size{Width: s.Size.Width, Height: s.Size.Height}
}

// MinSize returns the configured resize floor.
func (s Settings) MinSize() minimap.Size {
	return minimap.Size{Width: s.Gesture.MinWidth, Height: s.Gesture.MinHeight}
}

// ToAppearance converts the appearance section.
func (a AppearanceConfig) ToAppearance() (minimap.Appearance, error) {
	var out minimap.Appearance
	colors := []struct {
		key string
		hex string
		dst *minimap.Color
	}{
		{"background", a.Background, &out.BackgroundFill},
		{"backgroundStroke", a.BackgroundStroke, &out.BackgroundStroke},
		{"frame", a.Frame, &out.FrameColor},
		{"anchorFill", a.AnchorFill, &out.AnchorMarker.Fill},
		{"anchorStroke", a.AnchorStroke, &out.AnchorMarker.Stroke},
		{"pulse", a.Pulse, &out.PulseColor},
	}
	for _, c := range colors {
		v, err := ParseColor(c.hex)
		if err != nil {
			return out, fmt.Errorf("appearance.%s: %w", c.key, err)
		}
		*c.dst = v
	}
	out.BackgroundStrokeWidth = a.BackgroundStrokeWidth
	out.BackgroundOpacity = a.BackgroundOpacity
	out.FrameWidth = a.FrameWidth
	out.FrameOpacity = a.FrameOpacity
	out.ZIndex = a.ZIndex
	out.AnchorMarker.StrokeWidth = a.AnchorStrokeWidth
	out.AnchorMarker.Radius = a.AnchorRadius
	out.PulseRadius = a.PulseRadius
	return out, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(hex string) (minimap.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	alpha := 1.0
	if len(h) == 8 {
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return minimap.Color{}, fmt.Errorf("invalid color %q", hex)
		}
		alpha = float64(a) / 255
		h = h[:6]
	}
	rgb := color.HexToRgb(h)
	if len(rgb) != 3 {
		return minimap.Color{}, fmt.Errorf("invalid color %q", hex)
	}
	return minimap.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
		A: alpha,
	}, nil
}

// Logger builds a zerolog logger writing to w at the configured level.
func (s Settings) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid logLevel %q: %w", s.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Overlay builds an anchored overlay inside a host of hostSize. Fields of
// cfg that are already set win over the file; the renderer, host, clock and
// logger always come from cfg.
func (s Settings) Overlay(hostSize minimap.Size, cfg minimap.Config) (*minimap.Overlay, error) {
	axis, err := s.Axis()
	if err != nil {
		return nil, err
	}
	anchor, err := s.AnchorPreset()
	if err != nil {
		return nil, err
	}
	size := s.OverlaySize()
	if !size.Positive() {
		return nil, fmt.Errorf("invalid size %vx%v", size.Width, size.Height)
	}

	if cfg.YAxis == minimap.YDown {
		cfg.YAxis = axis
	}
	if cfg.GestureTimeout == 0 {
		cfg.GestureTimeout = s.Gesture.Timeout
	}
	if cfg.ZoneSize == 0 {
		cfg.ZoneSize = s.Gesture.ZoneSize
	}
	if cfg.MinSize == (minimap.Size{}) {
		cfg.MinSize = s.MinSize()
	}
	if cfg.Appearance == nil {
		a, err := s.Appearance.ToAppearance()
		if err != nil {
			return nil, err
		}
		cfg.Appearance = &a
	}
	if s.Debug {
		minimap.SetDebugMode(true)
	}

	o := minimap.NewAnchored(size, anchor, hostSize, s.Margin, cfg)
	o.AnchorMarkerEnabled = s.AnchorMarker
	o.RepositionOnClick = s.RepositionOnClick
	o.PulseEnabled = s.Pulse.Enabled
	if s.Pulse.Duration > 0 {
		o.PulseDuration = float32(s.Pulse.Duration.Seconds())
	}
	return o, nil
}
