// Package cli contains the command line interface for janusbuild.
//
// # Usage
//
//	janusbuild [--log-*] [--pprof-*] [build] [--engine-root=PATH] [--options=TEXT] [-<option>[=<value>] ...]
//	janusbuild options [--parse=TEXT]
//	janusbuild manifest [--format=tree|json|yaml] [PATH]
//
// Arguments are split in two before parsing. Arguments with a single leading
// dash are Janus orchestrator options (for example -workspace=Game or
// -DFOO=1); they are joined into one command line that the commands tokenize
// and bind. Everything else is parsed by kong.
//
//	janusbuild --log-level=debug -workspace="C:\Dev\Game" -vscode
//
// # Configuration Files
//
// Kong flags can also be set from the user config directory: config.json is
// read with [kong.JSON] and config.yaml (or config.yml) with a YAML resolver.
// Nested YAML mappings name flags by joining keys with hyphens:
//
//	log:
//	  level: debug
//	  format: json
//
// Command-line flags override config file values.
//
// # Profiling Options
//
// Profiling flags (--pprof-mode, --pprof-dir) exist only when built with the
// pprof build tag. See package profile.
package cli
