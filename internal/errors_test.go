package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"source", &SourceError{Path: "content/journal", Op: "scan", Err: cause}, "source error: scan content/journal: boom"},
		{"parse", &ParseError{Dialect: "curated", Path: "curated/timeline.yaml", Err: cause}, "parse error [curated] curated/timeline.yaml: boom"},
		{"emit", &EmitError{Module: "timeline", Path: "devlogdata/timeline_gen.go", Err: cause}, "emit error [timeline] devlogdata/timeline_gen.go: boom"},
		{"index", &IndexError{Op: "open", Err: cause}, "index error: open: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is() lost the wrapped cause for %T", tt.err)
			}
		})
	}
}
