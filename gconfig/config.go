package gconfig

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chwjbn/gl2-demo/glib"
)

const (
	envPrefix         = "GL2DEMO"
	defaultConfigName = "config.yaml"
)

type WindowConfig struct {
	Width        int    `mapstructure:"width"`
	Height       int    `mapstructure:"height"`
	Title        string `mapstructure:"title"`
	SwapInterval int    `mapstructure:"swap_interval"`
}

type LogConfig struct {
	Mode   string        `mapstructure:"mode"`
	Dir    string        `mapstructure:"dir"`
	MaxAge time.Duration `mapstructure:"max_age"`
}

type RenderConfig struct {
	Effect    string `mapstructure:"effect"`
	EffectDir string `mapstructure:"effect_dir"`
	MaxFrames int    `mapstructure:"max_frames"`
}

type CaptureConfig struct {
	Path string `mapstructure:"path"`
}

type AppConfig struct {
	Window  WindowConfig  `mapstructure:"window"`
	Log     LogConfig     `mapstructure:"log"`
	Render  RenderConfig  `mapstructure:"render"`
	Capture CaptureConfig `mapstructure:"capture"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"width":    "window.width",
	"height":   "window.height",
	"log-mode": "log.mode",
	"effect":   "render.effect",
	"frames":   "render.max_frames",
	"capture":  "capture.path",
}

func NewFlagSet(name string) *pflag.FlagSet {

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flags.String("config", "", "config file (default <appdir>/"+defaultConfigName+" when present)")
	flags.Int("width", 800, "window width in pixels")
	flags.Int("height", 600, "window height in pixels")
	flags.String("log-mode", "debug", "debug or release")
	flags.String("effect", "", "shader pair under the effect dir, empty for built-in")
	flags.Int("frames", 0, "stop after this many frames, 0 runs until the window closes")
	flags.String("capture", "", "write a PNG of the last frame to this path on exit")

	return flags
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "gl2demo")
	v.SetDefault("window.swap_interval", 1)

	v.SetDefault("log.mode", "debug")
	v.SetDefault("log.dir", glib.AppPath("log"))
	v.SetDefault("log.max_age", 24*time.Hour)

	v.SetDefault("render.effect", "")
	v.SetDefault("render.effect_dir", glib.AppPath("data", "effect"))
	v.SetDefault("render.max_frames", 0)

	v.SetDefault("capture.path", "")
}

// Load resolves the configuration from, in rising priority: defaults, the
// config file, GL2DEMO_* environment variables and flags set on the command
// line. flags may be nil.
func Load(flags *pflag.FlagSet) (*AppConfig, error) {

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""

	if flags != nil {
		for flagName, key := range flagKeys {
			if xFlag := flags.Lookup(flagName); xFlag != nil {
				if xErr := v.BindPFlag(key, xFlag); xErr != nil {
					return nil, errors.Wrapf(xErr, "bind flag %s", flagName)
				}
			}
		}
		if xFlag := flags.Lookup("config"); xFlag != nil {
			configFile = xFlag.Value.String()
		}
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if xErr := v.ReadInConfig(); xErr != nil {
			return nil, errors.Wrapf(xErr, "read config %s", configFile)
		}
	} else if defaultFile := glib.AppPath(defaultConfigName); glib.FileExists(defaultFile) {
		v.SetConfigFile(defaultFile)
		if xErr := v.ReadInConfig(); xErr != nil {
			return nil, errors.Wrapf(xErr, "read config %s", defaultFile)
		}
	}

	cfg := new(AppConfig)
	if xErr := v.Unmarshal(cfg); xErr != nil {
		return nil, errors.Wrap(xErr, "decode config")
	}

	if xErr := cfg.Validate(); xErr != nil {
		return nil, xErr
	}

	return cfg, nil
}

func (c *AppConfig) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Render.MaxFrames < 0 {
		return errors.Errorf("render.max_frames must not be negative, got %d", c.Render.MaxFrames)
	}

	return nil
}
