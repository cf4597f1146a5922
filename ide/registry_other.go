//go:build !windows

package ide

func vscodeRegistryPaths() []string { return nil }
