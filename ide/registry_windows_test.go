//go:build windows

package ide

import "testing"

func TestCommandPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"C:\Program Files\Microsoft VS Code\Code.exe" "%1"`, `C:\Program Files\Microsoft VS Code\Code.exe`},
		{`C:\VSCode\Code.exe "%1"`, `C:\VSCode\Code.exe`},
		{`"unterminated`, `unterminated`},
	}

	for _, tt := range tests {
		if got := commandPath(tt.in); got != tt.want {
			t.Errorf("commandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
