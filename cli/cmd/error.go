package cmd

import "github.com/ardnew/janusbuild/pkg"

var (
	ErrJSONMarshal   = pkg.NewError("marshal JSON")
	ErrYAMLMarshal   = pkg.NewError("marshal YAML")
	ErrWriteOutput   = pkg.NewError("write output")
	ErrUnknownFormat = pkg.NewError("unknown output format")
)
