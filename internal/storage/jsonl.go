package storage

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONLSink appends events as JSON lines to a file.
type JSONLSink struct {
	path string
	mu   sync.Mutex
}

// NewJSONLSink returns a sink appending to path. Parent directories are
// created on first write.
func NewJSONLSink(path string) *JSONLSink {
	return &JSONLSink{path: path}
}

// Emit implements Sink.
func (s *JSONLSink) Emit(_ context.Context, ev amm.Event) error {
	line, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	return s.write(line)
}

func (s *JSONLSink) write(line []byte) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output dir")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open output file")
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(line); err != nil {
		return errors.Wrap(err, "write event")
	}
	if err := writer.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write newline")
	}

	return errors.Wrap(writer.Flush(), "flush output")
}
