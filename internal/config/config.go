package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// HostConfig holds configuration for the host binary.
type HostConfig struct {
	SignalingURL string `toml:"signaling"`
	HostID       string `toml:"id"`
	Rate         int    `toml:"rate"` // polls per second
	LogLevel     string `toml:"log_level"`
}

// ParseHostFlags parses flags for the host binary.
func ParseHostFlags(args []string) (*HostConfig, error) {
	cfg := &HostConfig{}
	fs := flag.NewFlagSet("host", flag.ContinueOnError)
	fs.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	fs.StringVar(&cfg.HostID, "id", "", "Host ID (auto-generated if empty)")
	fs.IntVar(&cfg.Rate, "rate", 60, "Snapshots per second")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	if err := parse(fs, args, cfg); err != nil {
		return nil, err
	}

	if cfg.HostID == "" {
		cfg.HostID = fmt.Sprintf("host-%s", randomID())
	}
	if cfg.Rate < 1 {
		return nil, fmt.Errorf("rate must be positive, got %d", cfg.Rate)
	}
	return cfg, nil
}

// Interval is the time between two snapshots.
func (c *HostConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.Rate)
}

// ControllerConfig holds configuration for the controller binary.
type ControllerConfig struct {
	SignalingURL string `toml:"signaling"`
	ControllerID string `toml:"id"`
	HostID       string `toml:"host"`
	MoveRate     int    `toml:"move_rate"` // move events per second, 0 for unlimited
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	LogLevel     string `toml:"log_level"`
}

// ParseControllerFlags parses flags for the controller binary.
func ParseControllerFlags(args []string) (*ControllerConfig, error) {
	cfg := &ControllerConfig{}
	fs := flag.NewFlagSet("controller", flag.ContinueOnError)
	fs.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	fs.StringVar(&cfg.ControllerID, "id", "", "Controller ID (auto-generated if empty)")
	fs.StringVar(&cfg.HostID, "host", "", "Host ID to connect to (required)")
	fs.IntVar(&cfg.MoveRate, "move-rate", 120, "Maximum move events sent per second (0 = unlimited)")
	fs.IntVar(&cfg.Width, "width", 640, "Surface width in pixels")
	fs.IntVar(&cfg.Height, "height", 480, "Surface height in pixels")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	if err := parse(fs, args, cfg); err != nil {
		return nil, err
	}

	if cfg.ControllerID == "" {
		cfg.ControllerID = fmt.Sprintf("controller-%s", randomID())
	}
	if cfg.HostID == "" {
		return nil, fmt.Errorf("host ID is required")
	}
	return cfg, nil
}

// DemoConfig holds configuration for the local demo.
type DemoConfig struct {
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	LogEvery time.Duration `toml:"log_every"`
	LogLevel string        `toml:"log_level"`
}

// ParseDemoFlags parses flags for the demo binary.
func ParseDemoFlags(args []string) (*DemoConfig, error) {
	cfg := &DemoConfig{}
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", 640, "Surface width in pixels")
	fs.IntVar(&cfg.Height, "height", 480, "Surface height in pixels")
	fs.DurationVar(&cfg.LogEvery, "log-every", 250*time.Millisecond, "How often to log the polled state (0 = never)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	if err := parse(fs, args, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse applies flag defaults, then the TOML file named by -config if any,
// then the flags given explicitly on the command line.
func parse(fs *flag.FlagSet, args []string, cfg any) error {
	var path string
	fs.StringVar(&path, "config", "", "Path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return nil
}

func randomID() string {
	return uuid.NewString()[:8]
}
