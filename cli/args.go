package cli

import "strings"

// splitArgs separates the Janus options from the arguments kong parses.
//
// Janus options start with a single dash ("-workspace=Game"); everything
// else, including "--flags", positionals and all arguments following a bare
// "--", is left for kong in its original order.
func splitArgs(args []string) (kongArgs, janusArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			kongArgs = append(kongArgs, args[i:]...)

			break
		}

		if isJanusArg(arg) {
			janusArgs = append(janusArgs, arg)
		} else {
			kongArgs = append(kongArgs, arg)
		}
	}

	return kongArgs, janusArgs
}

func isJanusArg(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && !strings.HasPrefix(arg, "--")
}
