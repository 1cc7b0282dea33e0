package emit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/iksnae/devlog/internal"
)

// Emitter renders one generated data module from a snapshot.
type Emitter interface {
	Emit(snapshot *internal.Snapshot, w io.Writer) error
	Filename() string
}

// Emitters returns the fixed set of modules a sync run writes.
func Emitters() []Emitter {
	return []Emitter{
		&TimelineEmitter{},
		&JournalEmitter{},
		&SessionsEmitter{},
		&BlogEmitter{},
	}
}

// WriteAll renders every module to memory first and only then touches the
// filesystem, so a failing render leaves the previous output in place.
func WriteAll(snapshot *internal.Snapshot, outDir string) error {
	type rendered struct {
		name string
		data []byte
	}

	var files []rendered
	for _, em := range Emitters() {
		var buf bytes.Buffer
		if err := em.Emit(snapshot, &buf); err != nil {
			return &internal.EmitError{Module: em.Filename(), Path: outDir, Err: err}
		}
		files = append(files, rendered{name: em.Filename(), data: buf.Bytes()})
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return &internal.EmitError{Module: "output", Path: outDir, Err: err}
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return &internal.EmitError{Module: f.name, Path: path, Err: err}
		}
	}
	return nil
}
