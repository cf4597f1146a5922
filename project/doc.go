// Package project loads .janusproj manifests into a graph of projects.
//
// A manifest is a JSON object naming a project and the manifests it
// references:
//
//	{
//	  "Name": "Game",
//	  "Version": "1.2.0.0",
//	  "References": [
//	    { "Name": "$(EnginePath)/Janus.janusproj" },
//	    { "Name": "$(ProjectPath)/Plugins/Net/Net.janusproj" }
//	  ]
//	}
//
// Reference names may start with $(EnginePath) or $(ProjectPath), which
// resolve against the engine root and the referencing manifest's folder.
// A [Loader] reads each manifest at most once, keyed by its canonical path,
// so shared references resolve to the same [*Manifest].
package project
