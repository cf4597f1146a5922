// Package option binds tokenized command-line options to typed configuration
// fields.
//
// A configuration schema is declared once as a [Registry] of [Descriptor]
// values. Each descriptor pairs an external option name with a typed setter
// for one field:
//
//	var cfg struct {
//		Verbose bool
//		Jobs    int
//		Defines []string
//	}
//
//	reg := option.MustRegistry(
//		option.Bool(&cfg.Verbose, "verbose", option.Describe("Verbose logging.")),
//		option.Int(&cfg.Jobs, "jobs", option.Hint("<n>")),
//		option.Strings(&cfg.Defines, "define", option.Hint("<a,b>")),
//	)
//
//	err := option.Bind(reg, cmdline.Parse("-verbose -jobs=4 -define=A,B"))
//
// Conversion is driven by a closed set of [Kind] tags. Bare flags bind true
// to boolean fields; array fields split their value on ','. Each descriptor
// binds independently and every failure is reported, see [ConversionError]
// and [TargetError].
package option
