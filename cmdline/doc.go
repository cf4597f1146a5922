// Package cmdline tokenizes orchestrator command lines.
//
// The grammar is deliberately small:
//
//	arg   := ['"'] ['-' | '/'] name ['=' value]
//	value := '"' text '"' | "'" text "'" | token
//
// [Parse] is total: malformed input yields a best-effort sequence of
// [Option] values and never an error. Unterminated quotes read to the end of
// the input, and adjacent markers produce options with empty names.
//
// A [Table] memoizes tokenizations by the exact command-line text so that
// repeated queries ([Table.Has], [Table.Lookup]) within a process tokenize
// each distinct text once.
//
//	t := cmdline.NewTable()
//	text := cmdline.Join(os.Args[1:])
//	if t.Has(text, "help") {
//		// ...
//	}
package cmdline
