//go:build windows

package ide

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

const vscodeOpenCommand = `SOFTWARE\Classes\Applications\Code.exe\shell\open\command`

// vscodeRegistryPaths returns the executable paths registered for opening
// files with VS Code, current user first.
func vscodeRegistryPaths() []string {
	var out []string

	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		k, err := registry.OpenKey(root, vscodeOpenCommand, registry.QUERY_VALUE)
		if err != nil {
			continue
		}

		cmd, _, err := k.GetStringValue("")
		_ = k.Close()

		if err != nil {
			continue
		}

		if path := commandPath(cmd); path != "" {
			out = append(out, path)
		}
	}

	return out
}

// commandPath extracts the quoted executable from a shell open command such
// as `"C:\...\Code.exe" "%1"`.
func commandPath(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if !strings.HasPrefix(cmd, `"`) {
		path, _, _ := strings.Cut(cmd, " ")

		return path
	}

	path, _, _ := strings.Cut(cmd[1:], `"`)

	return path
}
