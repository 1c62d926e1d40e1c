package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagChamfer  = flag.Float64("chamfer", 0, "Navigation cube chamfer ratio in (0, 0.707)")
	flagNoLabels = flag.Bool("no-labels", false, "Draw faces without text labels")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagSnapshot = flag.String("snapshot", "", "Render the widget headless to this PNG and exit")
	flagWrite    = flag.Bool("write-config", false, "Save the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SnapshotPath returns the --snapshot output path, empty for interactive runs.
func SnapshotPath() string {
	return *flagSnapshot
}

// WriteConfig reports whether --write-config was given.
func WriteConfig() bool {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagChamfer != 0 {
		cfg.NavCube.Chamfer = float32(*flagChamfer)
	}
	if *flagNoLabels {
		cfg.NavCube.Labels = false
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
