package log

import (
	"io"
	"testing"
	"time"
)

func TestOptions_SetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(true),
		WithOutput(nil),
	)

	if c.level != LevelTrace || c.format != FormatJSON || !c.caller || !c.pretty {
		t.Errorf("options not applied: %+v", c)
	}

	if c.output != io.Discard {
		t.Errorf("WithOutput(nil) output = %T, want io.Discard", c.output)
	}
}

func TestWithTimeLayout(t *testing.T) {
	at := time.Date(2026, 3, 9, 7, 5, 1, 250_000_000, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2026-03-09T07:05:01Z"},
		{"rfc-3339-nano", "2026-03-09T07:05:01.25Z"},
		{"Kitchen", "7:05AM"},
		{"TimeOnly", "07:05:01"},
		{"ms", "Mar  9 07:05:01.250"},
		{"2006/01/02", "2026/03/09"},
		{"none", ""},
		{"", ""},
		{" \t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := WithTimeLayout(tt.layout)(config{}).formatTime(at); got != tt.want {
				t.Errorf("formatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	c := apply(config{}, WithLevel(LevelError), WithPretty(true), WithDefaults(nil))

	if c.level != DefaultLevel || c.pretty != DefaultPretty || c.format != DefaultFormat {
		t.Errorf("WithDefaults did not reset settings: %+v", c)
	}

	if c.output != io.Discard {
		t.Errorf("WithDefaults(nil) output = %T, want io.Discard", c.output)
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := c.formatTime(at); got != at.Format(DefaultTimeLayout) {
		t.Errorf("default formatTime() = %q", got)
	}
}

func TestWithTimeFunc(t *testing.T) {
	c := WithTimeFunc(func(time.Time) string { return "fixed" })(config{})
	if got := c.formatTime(time.Now()); got != "fixed" {
		t.Errorf("formatTime() = %q, want fixed", got)
	}

	if c := WithTimeFunc(nil)(config{}); c.formatTime != nil {
		t.Error("WithTimeFunc(nil) replaced the formatter")
	}
}

func TestHandler_UnknownFormatDiscards(t *testing.T) {
	c := makeConfig(io.Discard, WithFormat(Format(99)))
	if c.handler().Enabled(t.Context(), 100) {
		t.Error("handler for unknown format is enabled")
	}
}
