// Package config declares the orchestrator configuration and its command-line
// schema.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/option"
)

// Config holds every orchestrator setting that can be given in the Janus
// command-line grammar.
type Config struct {
	Workspace       string
	GenerateProject bool
	BuildDeps       bool
	ReBuildDeps     bool
	Deploy          bool
	Build           bool
	Clean           bool
	Rebuild         bool
	PrintSDKs       bool

	LogFile    string
	Verbose    bool
	ConsoleLog bool

	Configurations []string
	Platforms      []string
	Architectures  []string

	MaxConcurrency            int
	ConcurrencyProcessorScale float64

	BinariesFolder     string
	IntermediateFolder string

	VS2015 bool
	VS2017 bool
	VS2019 bool
	VS2022 bool
	VSCode bool

	// Defines are the custom preprocessor defines given as -D<name>[=value].
	Defines []string
}

// Default returns the configuration used when no option overrides a field.
func Default() *Config {
	return &Config{
		GenerateProject:           true,
		LogFile:                   "Cache/Intermediate/Log.txt",
		Verbose:                   true,
		ConsoleLog:                true,
		MaxConcurrency:            1410,
		ConcurrencyProcessorScale: 1.0,
		BinariesFolder:            "Binaries",
		IntermediateFolder:        "Cache/Intermediate",
	}
}

// Registry returns the option schema bound to the fields of c.
func (c *Config) Registry() *option.Registry {
	return option.MustRegistry(
		option.String(&c.Workspace, "workspace",
			option.Hint("<path>"),
			option.Describe("The custom working directory.")),
		option.Bool(&c.GenerateProject, "genproject",
			option.Describe("Generates the projects for the workspace.")),
		option.Bool(&c.BuildDeps, "BuildDeps",
			option.Describe("Runs the deps building tool to fetch and compile the 3rd party files to produce binaries (build missing ones).")),
		option.Bool(&c.ReBuildDeps, "ReBuildDeps",
			option.Describe("Runs the deps building tool to fetch and compile the 3rd party files to produce binaries (force rebuild).")),
		option.Bool(&c.Deploy, "deploy",
			option.Describe("Runs the deploy tool.")),
		option.Bool(&c.Build, "build",
			option.Describe("Builds the targets.")),
		option.Bool(&c.Clean, "clean",
			option.Describe("Cleans the build system cache.")),
		option.Bool(&c.Rebuild, "rebuild",
			option.Describe("Rebuilds the targets.")),
		option.Bool(&c.PrintSDKs, "printSDKs",
			option.Describe("Prints all SDKs found on system.\nCan be used to query Win10 SDK or any other platform-specific toolsets used by build tool.")),
		option.String(&c.LogFile, "logfile",
			option.Hint("<path>"),
			option.Describe("The log file path relative to the working directory.\nSet to empty to disable it.")),
		option.Bool(&c.Verbose, "verbose",
			option.Describe("Enables verbose logging and detailed diagnostics.")),
		option.Bool(&c.ConsoleLog, "log",
			option.Describe("Enables logging into console.")),
		option.Strings(&c.Configurations, "configuration",
			option.Hint("<"+strings.Join(Configurations, "/")+">"),
			option.Describe("The target configuration to build.\nIf not specified builds all supported configurations.")),
		option.Strings(&c.Platforms, "platform",
			option.Hint("<"+strings.Join(Platforms, "/")+">"),
			option.Describe("The target platform to build.\nIf not specified builds all supported platforms.")),
		option.Strings(&c.Architectures, "arch",
			option.Hint("<"+strings.Join(Architectures, "/")+">"),
			option.Describe("The target platform architecture to build.\nIf not specified builds all valid architectures.")),
		option.Int(&c.MaxConcurrency, "maxConcurrency",
			option.Hint("<threads>"),
			option.Describe("The maximum allowed concurrency for a build system (maximum active worker threads count).")),
		option.Float(&c.ConcurrencyProcessorScale, "concurrencyProcessorScale",
			option.Hint("<scale>"),
			option.Describe("The concurrency scale for a build system that specifies how many worker threads allocate per-logical processor.")),
		option.String(&c.BinariesFolder, "binaries",
			option.Hint("<path>"),
			option.Describe("The output binaries folder path relative to the working directory.")),
		option.String(&c.IntermediateFolder, "intermediate",
			option.Hint("<path>"),
			option.Describe("The intermediate build files folder path relative to the working directory.")),
		option.Bool(&c.VS2015, "vs2015",
			option.Describe("Generates Visual Studio 2015 project format files.\nValid only with -genproject option.")),
		option.Bool(&c.VS2017, "vs2017",
			option.Describe("Generates Visual Studio 2017 project format files.\nValid only with -genproject option.")),
		option.Bool(&c.VS2019, "vs2019",
			option.Describe("Generates Visual Studio 2019 project format files.\nValid only with -genproject option.")),
		option.Bool(&c.VS2022, "vs2022",
			option.Describe("Generates Visual Studio 2022 project format files.\nValid only with -genproject option.")),
		option.Bool(&c.VSCode, "vscode",
			option.Describe("Generates Visual Studio Code project format files.\nValid only with -genproject option.")),
	)
}

// Apply binds opts into c, collects custom defines and validates the result.
// All binding and validation failures are returned together.
func (c *Config) Apply(opts []cmdline.Option) error {
	r := c.Registry()

	bindErr := option.Bind(r, opts)
	c.Defines = append(c.Defines, Defines(r, opts)...)

	return errors.Join(bindErr, c.Validate())
}

// ProjectFormats returns the names of the project formats enabled in c.
func (c *Config) ProjectFormats() []string {
	var formats []string

	for _, f := range []struct {
		name string
		on   bool
	}{
		{"vs2015", c.VS2015},
		{"vs2017", c.VS2017},
		{"vs2019", c.VS2019},
		{"vs2022", c.VS2022},
		{"vscode", c.VSCode},
	} {
		if f.on {
			formats = append(formats, f.name)
		}
	}

	return formats
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("workspace", c.Workspace),
		slog.Bool("genproject", c.GenerateProject),
		slog.Bool("build", c.Build),
		slog.Bool("clean", c.Clean),
		slog.Bool("rebuild", c.Rebuild),
		slog.String("logfile", c.LogFile),
		slog.Int("max_concurrency", c.MaxConcurrency),
		slog.Float64("concurrency_scale", c.ConcurrencyProcessorScale),
		slog.Any("formats", c.ProjectFormats()),
		slog.Any("defines", c.Defines),
	)
}
