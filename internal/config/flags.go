package config

import "flag"

// cliFlags holds the command-line overrides registered on one FlagSet.
type cliFlags struct {
	fs *flag.FlagSet

	config       *string
	debug        *bool
	height       *float64
	width        *float64
	length       *float64
	steps        *int
	floating     *bool
	spiral       *bool
	spiralAmount *float64
	ramp         *bool
	material     *string
	format       *string
	output       *string
}

func newFlags(fs *flag.FlagSet) *cliFlags {
	return &cliFlags{
		fs:           fs,
		config:       fs.String("config", "", "Path to config file"),
		debug:        fs.Bool("debug", false, "Enable debug logging"),
		height:       fs.Float64("height", 0, "Total stair height"),
		width:        fs.Float64("width", 0, "Step width"),
		length:       fs.Float64("length", 0, "Total stair length"),
		steps:        fs.Int("steps", 0, "Number of steps"),
		floating:     fs.Bool("floating", false, "Build disjoint floating steps"),
		spiral:       fs.Bool("spiral", false, "Wind floating steps into a spiral"),
		spiralAmount: fs.Float64("spiral-amount", 0, "Spiral radius"),
		ramp:         fs.Bool("ramp", false, "Add ramp colliders"),
		material:     fs.String("material", "", "Material name for steps"),
		format:       fs.String("format", "", "Output format: yaml, json or obj"),
		output:       fs.String("o", "", "Output file (default stdout)"),
	}
}

var cli = newFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *cli.config
}

// apply copies the flags given on the command line into cfg. Flags left
// unset keep the file or default value, so -floating=false can switch off
// a floating stair from the config file.
func (f *cliFlags) apply(cfg *Config) {
	spiral := false
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.debug {
				cfg.Logging.Level = "debug"
			}
		case "height":
			cfg.Stair.Height = float32(*f.height)
		case "width":
			cfg.Stair.Width = float32(*f.width)
		case "length":
			cfg.Stair.Length = float32(*f.length)
		case "steps":
			cfg.Stair.Steps = *f.steps
		case "floating":
			cfg.Stair.Floating = *f.floating
		case "spiral":
			cfg.Stair.Spiral = *f.spiral
			spiral = *f.spiral
		case "spiral-amount":
			cfg.Stair.SpiralAmount = float32(*f.spiralAmount)
		case "ramp":
			cfg.Stair.UseRamp = *f.ramp
		case "material":
			cfg.Host.Material = *f.material
		case "format":
			cfg.Output.Format = *f.format
		case "o":
			cfg.Output.Path = *f.output
		}
	})

	// A spiral only exists on a floating stair.
	if spiral {
		cfg.Stair.Floating = true
	}
}
