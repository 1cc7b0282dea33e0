package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iksnae/devlog/internal"
)

// generatedPackage is the package name shared by every emitted module.
const generatedPackage = "devlogdata"

// writeHeader writes the generated-file preamble. The sync timestamp is the
// only non-deterministic output of the pipeline: everything after this line
// is byte-identical across runs on unchanged input.
func writeHeader(w io.Writer, syncedAt time.Time) {
	_, _ = fmt.Fprintf(w, "// Code generated by devlog sync. DO NOT EDIT.\n")
	_, _ = fmt.Fprintf(w, "// Last synced: %s\n\n", syncedAt.UTC().Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "package %s\n\n", generatedPackage)
}

// quote renders s as a Go string literal. strconv.Quote escapes backslashes,
// quotes, and control bytes, which is what keeps the emitted module valid
// regardless of what the markdown contained.
func quote(s string) string {
	return strconv.Quote(s)
}

// stringSlice renders a []string literal, nil when empty.
func stringSlice(items []string) string {
	if len(items) == 0 {
		return "nil"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// snippetSlice renders a []CodeSnippet literal, nil when empty. The
// CodeSnippet type itself is declared by the sessions module; journal and
// sessions modules share the one declaration inside the generated package.
func snippetSlice(snippets []internal.CodeSnippet) string {
	if len(snippets) == 0 {
		return "nil"
	}
	parts := make([]string, len(snippets))
	for i, s := range snippets {
		parts[i] = fmt.Sprintf("{Language: %s, Content: %s}", quote(s.Language), quote(s.Content))
	}
	return "[]CodeSnippet{" + strings.Join(parts, ", ") + "}"
}
