package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "markerview.json"

// Vec3 is a position or offset as written in the config file: [x, y, z].
type Vec3 [3]float32

type WindowConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"targetFPS"`
	Antialias bool   `mapstructure:"antialias"`
	Resizable bool   `mapstructure:"resizable"`
}

type AssetConfig struct {
	Path string `mapstructure:"path"`
}

type CameraConfig struct {
	FOV      float32 `mapstructure:"fov"`
	Near     float32 `mapstructure:"near"`
	Far      float32 `mapstructure:"far"`
	Position Vec3    `mapstructure:"position"`
}

type ControlsConfig struct {
	EnableDamping bool    `mapstructure:"enableDamping"`
	DampingFactor float32 `mapstructure:"dampingFactor"`
	EnablePan     bool    `mapstructure:"enablePan"`
	MinDistance   float32 `mapstructure:"minDistance"`
	MaxDistance   float32 `mapstructure:"maxDistance"`
	MinPolarAngle float32 `mapstructure:"minPolarAngle"`
	MaxPolarAngle float32 `mapstructure:"maxPolarAngle"`
	RotateSpeed   float32 `mapstructure:"rotateSpeed"`
	ZoomSpeed     float32 `mapstructure:"zoomSpeed"`
	Target        Vec3    `mapstructure:"target"`
}

type FlyToConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Offset   Vec3          `mapstructure:"offset"`
	Ease     string        `mapstructure:"ease"`
}

type LightsConfig struct {
	AmbientIntensity     float32 `mapstructure:"ambientIntensity"`
	DirectionalIntensity float32 `mapstructure:"directionalIntensity"`
	Directional          []Vec3  `mapstructure:"directional"`
}

type MarkerConfig struct {
	Label    string `mapstructure:"label"`
	Position Vec3   `mapstructure:"position"`
	Focus    Vec3   `mapstructure:"focus"`
}

type MarkerStyleConfig struct {
	Radius     float32 `mapstructure:"radius"`
	Opacity    float32 `mapstructure:"opacity"`
	LabelColor string  `mapstructure:"labelColor"`
}

type HUDConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Width   int  `mapstructure:"width"`
}

// Config is the typed view of everything viper knows after Load.
type Config struct {
	LogLevel    string            `mapstructure:"logLevel"`
	LogFile     string            `mapstructure:"logFile"`
	Window      WindowConfig      `mapstructure:"window"`
	Asset       AssetConfig       `mapstructure:"asset"`
	Camera      CameraConfig      `mapstructure:"camera"`
	Controls    ControlsConfig    `mapstructure:"controls"`
	FlyTo       FlyToConfig       `mapstructure:"flyTo"`
	Lights      LightsConfig      `mapstructure:"lights"`
	MarkerStyle MarkerStyleConfig `mapstructure:"markerStyle"`
	Markers     []MarkerConfig    `mapstructure:"markers"`
	HUD         HUDConfig         `mapstructure:"hud"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "markerview")
	v.SetDefault("window.targetFPS", 60)
	v.SetDefault("window.antialias", true)
	v.SetDefault("window.resizable", true)

	v.SetDefault("asset.path", "assets/scene.glb")

	v.SetDefault("camera.fov", 75)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 1000)
	v.SetDefault("camera.position", []float64{0, 1, 5})

	v.SetDefault("controls.enableDamping", true)
	v.SetDefault("controls.dampingFactor", 0.25)
	v.SetDefault("controls.enablePan", false)
	v.SetDefault("controls.minDistance", 2)
	v.SetDefault("controls.maxDistance", 5)
	v.SetDefault("controls.minPolarAngle", 0)
	v.SetDefault("controls.maxPolarAngle", math.Pi/2)
	v.SetDefault("controls.rotateSpeed", 1)
	v.SetDefault("controls.zoomSpeed", 1)
	v.SetDefault("controls.target", []float64{0, 1, 0})

	v.SetDefault("flyTo.duration", time.Second)
	v.SetDefault("flyTo.offset", []float64{0, 1, 0.5})
	v.SetDefault("flyTo.ease", "quadOut")

	v.SetDefault("lights.ambientIntensity", 0.5)
	v.SetDefault("lights.directionalIntensity", 0.5)
	v.SetDefault("lights.directional", [][]float64{
		{5, 10, 5},
		{-5, 10, 5},
		{5, 10, -5},
		{-5, 10, -5},
	})

	v.SetDefault("markerStyle.radius", 0.1)
	v.SetDefault("markerStyle.opacity", 0.6)
	v.SetDefault("markerStyle.labelColor", "DarkGray")

	v.SetDefault("markers", []map[string]any{
		{"label": "Point 1", "position": []float64{-2, 0.5, 0}, "focus": []float64{-4.02, 1.88, 0}},
		{"label": "Point 2", "position": []float64{2, 1.4, 1}, "focus": []float64{2.7, 0.4, 0.2}},
		{"label": "Point 3", "position": []float64{1.4, 1.4, -0.82}, "focus": []float64{0.2, 0.9, -1.92}},
	})

	v.SetDefault("hud.enabled", true)
	v.SetDefault("hud.width", 180)
}

// Load reads markerview.json from configDir on top of the defaults and
// MARKERVIEW_* environment overrides. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".json"))
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("MARKERVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the filesystem.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg, decodeHook)
	return &cfg
}

var decodeHook = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
	secondsToDurationHook,
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
))

// secondsToDurationHook reads a bare number, or a string holding one, as
// seconds when the target is a time.Duration. Strings with a unit ("750ms")
// fall through to the stock duration hook.
func secondsToDurationHook(from, to reflect.Type, data any) (any, error) {
	durationType := reflect.TypeOf(time.Duration(0))
	if to != durationType || from == durationType {
		return data, nil
	}
	var secs float64
	switch n := data.(type) {
	case float64:
		secs = n
	case float32:
		secs = float64(n)
	case int:
		secs = float64(n)
	case int64:
		secs = float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return data, nil
		}
		secs = f
	default:
		return data, nil
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// MinFlightDuration is the shortest accepted flyTo.duration.
const MinFlightDuration = 10 * time.Millisecond

// Validate rejects values the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Controls.MinDistance < 0 || c.Controls.MaxDistance < c.Controls.MinDistance {
		return fmt.Errorf("invalid distance clamp [%v, %v]", c.Controls.MinDistance, c.Controls.MaxDistance)
	}
	if c.Controls.MinPolarAngle < 0 || c.Controls.MaxPolarAngle > math.Pi || c.Controls.MaxPolarAngle < c.Controls.MinPolarAngle {
		return fmt.Errorf("invalid polar clamp [%v, %v]", c.Controls.MinPolarAngle, c.Controls.MaxPolarAngle)
	}
	if c.Controls.DampingFactor <= 0 || c.Controls.DampingFactor > 1 {
		return fmt.Errorf("controls.dampingFactor must be in (0, 1], got %v", c.Controls.DampingFactor)
	}
	if c.FlyTo.Duration < MinFlightDuration {
		return fmt.Errorf("flyTo.duration must be at least %v, got %v", MinFlightDuration, c.FlyTo.Duration)
	}
	if c.Asset.Path == "" {
		return errors.New("asset.path is empty")
	}
	seen := make(map[string]bool, len(c.Markers))
	for i, m := range c.Markers {
		if m.Label == "" {
			return fmt.Errorf("marker %d has no label", i)
		}
		if seen[m.Label] {
			return fmt.Errorf("duplicate marker label %q", m.Label)
		}
		seen[m.Label] = true
	}
	return nil
}
