package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/minimap"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(writeConfig(t, "minimap.json", `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 200.0, s.Size.Width)
	assert.Equal(t, 150.0, s.Size.Height)
	assert.Equal(t, "bottom-right", s.Anchor)
	assert.Equal(t, 20.0, s.Margin)
	assert.Equal(t, "down", s.YAxis)
	assert.Equal(t, 5*time.Second, s.Gesture.Timeout)
	assert.Equal(t, 25.0, s.Gesture.ZoneSize)
	assert.Equal(t, 100.0, s.Gesture.MinWidth)
	assert.Equal(t, 100.0, s.Gesture.MinHeight)
	assert.False(t, s.AnchorMarker)
	assert.False(t, s.Pulse.Enabled)
	assert.Equal(t, 350*time.Millisecond, s.Pulse.Duration)
	assert.Equal(t, "#000000", s.Appearance.Background)
	assert.Equal(t, 0.6, s.Appearance.BackgroundOpacity)
	assert.Equal(t, 100, s.Appearance.ZIndex)
}

func TestLoad_DefaultsMatchOverlayDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load("")
	require.NoError(t, err)

	a, err := s.Appearance.ToAppearance()
	require.NoError(t, err)
	want := minimap.DefaultAppearance()
	assert.Equal(t, want.BackgroundFill, a.BackgroundFill)
	assert.Equal(t, want.BackgroundStroke, a.BackgroundStroke)
	assert.Equal(t, want.BackgroundOpacity, a.BackgroundOpacity)
	assert.Equal(t, want.FrameColor, a.FrameColor)
	assert.Equal(t, want.FrameOpacity, a.FrameOpacity)
	assert.Equal(t, want.ZIndex, a.ZIndex)
	assert.Equal(t, want.AnchorMarker.Radius, a.AnchorMarker.Radius)
	assert.Equal(t, want.PulseRadius, a.PulseRadius)
}

func TestLoad_JSONOverride(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeConfig(t, "minimap.json", `{
		"size": { "width": 320, "height": 240 },
		"anchor": "top-left",
		"yAxis": "up",
		"gesture": { "timeout": "2s", "minWidth": 150 },
		"pulse": { "enabled": true, "duration": "500ms" },
		"appearance": { "frame": "#ff0000", "zIndex": 7 }
	}`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320.0, s.Size.Width)
	assert.Equal(t, "top-left", s.Anchor)
	assert.Equal(t, "up", s.YAxis)
	assert.Equal(t, 2*time.Second, s.Gesture.Timeout)
	assert.Equal(t, 150.0, s.Gesture.MinWidth)
	assert.Equal(t, 100.0, s.Gesture.MinHeight)
	assert.True(t, s.Pulse.Enabled)
	assert.Equal(t, 500*time.Millisecond, s.Pulse.Duration)
	assert.Equal(t, "#ff0000", s.Appearance.Frame)
	assert.Equal(t, 7, s.Appearance.ZIndex)
}

func TestLoad_YAML(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeConfig(t, "minimap.yaml", "anchor: center\nmargin: 5\nsize:\n  width: 400\n")
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "center", s.Anchor)
	assert.Equal(t, 5.0, s.Margin)
	assert.Equal(t, 400.0, s.Size.Width)
	assert.Equal(t, 150.0, s.Size.Height)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("MINIMAP_ANCHOR", "top-right")
	t.Setenv("MINIMAP_SIZE_WIDTH", "250")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "top-right", s.Anchor)
	assert.Equal(t, 250.0, s.Size.Width)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load("/nonexistent/path/minimap.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    minimap.Color
		wantErr bool
	}{
		{in: "#ffffff", want: minimap.Color{R: 1, G: 1, B: 1, A: 1}},
		{in: "ff0000", want: minimap.Color{R: 1, A: 1}},
		{in: "#fff", want: minimap.Color{R: 1, G: 1, B: 1, A: 1}},
		{in: "#00000000", want: minimap.Color{}},
		{in: "#0000ff80", want: minimap.Color{B: 1, A: 128.0 / 255}},
		{in: "#12345", wantErr: true},
		{in: "", wantErr: true},
		{in: "#ffffffzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestSettings_ParseErrors(t *testing.T) {
	_, err := Settings{YAxis: "sideways"}.Axis()
	assert.ErrorContains(t, err, "invalid yAxis")

	_, err = Settings{Anchor: "middle"}.AnchorPreset()
	assert.ErrorContains(t, err, "invalid anchor")

	a, err := Settings{Anchor: "Bottom-Left"}.AnchorPreset()
	require.NoError(t, err)
	assert.Equal(t, minimap.AnchorBottomLeft, a)
}

func TestSettings_Overlay(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeConfig(t, "minimap.json", `{
		"anchor": "bottom-right",
		"anchorMarker": true,
		"pulse": { "enabled": true, "duration": "1s" },
		"appearance": { "zIndex": 50 }
	}`)
	s, err := Load(path)
	require.NoError(t, err)

	o, err := s.Overlay(minimap.Size{Width: 1280, Height: 720}, minimap.Config{})
	require.NoError(t, err)

	assert.Equal(t, minimap.Vec2{X: 1060, Y: 550}, o.Position())
	assert.Equal(t, minimap.Size{Width: 200, Height: 150}, o.Size())
	assert.Equal(t, o.Geometry(), o.DefaultGeometry())
	assert.True(t, o.AnchorMarkerEnabled)
	assert.True(t, o.PulseEnabled)
	assert.Equal(t, float32(1), o.PulseDuration)
	assert.Equal(t, 50, o.Appearance.ZIndex)
	assert.Equal(t, minimap.YDown, o.YAxis())
}

func TestSettings_OverlayConfigWins(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load("")
	require.NoError(t, err)
	custom := minimap.DefaultAppearance()
	custom.ZIndex = 3

	o, err := s.Overlay(minimap.Size{Width: 1280, Height: 720}, minimap.Config{Appearance: &custom})
	require.NoError(t, err)
	assert.Equal(t, 3, o.Appearance.ZIndex)
}

func TestSettings_OverlayInvalid(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load("")
	require.NoError(t, err)

	bad := s
	bad.Size.Width = 0
	_, err = bad.Overlay(minimap.Size{Width: 1280, Height: 720}, minimap.Config{})
	assert.ErrorContains(t, err, "invalid size")

	bad = s
	bad.Appearance.Frame = "nope"
	_, err = bad.Overlay(minimap.Size{Width: 1280, Height: 720}, minimap.Config{})
	assert.ErrorContains(t, err, "appearance.frame")
}

func TestSettings_Logger(t *testing.T) {
	var buf bytes.Buffer
	l, err := Settings{LogLevel: "warn"}.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = Settings{LogLevel: "loud"}.Logger(&buf)
	assert.Error(t, err)
}
