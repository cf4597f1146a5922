// Package cmd provides the janusbuild subcommands.
//
// Commands read their shared state from [context.Context]: the option table
// ([WithTable]), the IDE locator ([WithLocator]) and the Janus command line
// ([WithCommandLine]) are installed by the caller before a command runs.
package cmd

// EngineRootIdentifier is the kong variable identifier containing the
// default engine root directory.
var EngineRootIdentifier = "engineRoot"
