package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blevesearch/mmap-go"
	"github.com/golang/snappy"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// snappySuffix marks inputs stored as a snappy framed stream.
const snappySuffix = ".sz"

// Source is the contents of one input. Close must be called when the
// bytes are no longer needed.
type Source struct {
	data mmap.MMap
	buf  []byte
	file *os.File
}

// Open reads the input at path. Plain files are memory mapped read-only,
// ".sz" files are decoded as snappy streams, and "-" reads stdin.
func Open(path string) (*Source, error) {
	if path == Stdin {
		return readAll(os.Stdin, "stdin")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}

	if strings.HasSuffix(path, snappySuffix) {
		defer file.Close()
		return readAll(snappy.NewReader(file), path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	// Empty files cannot be mapped.
	if stat.Size() == 0 {
		file.Close()
		return &Source{buf: []byte{}}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to mmap input %s: %w", path, err)
	}

	return &Source{data: data, file: file}, nil
}

// FromBytes wraps an in-memory buffer.
func FromBytes(b []byte) *Source {
	return &Source{buf: b}
}

func readAll(r io.Reader, name string) (*Source, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", name, err)
	}
	return &Source{buf: buf}, nil
}

// Bytes returns the input. A mapped buffer is read-only and becomes
// invalid after Close.
func (s *Source) Bytes() []byte {
	if s.data != nil {
		return s.data
	}
	return s.buf
}

// Mapped reports whether the bytes are backed by a memory map.
func (s *Source) Mapped() bool {
	return s.data != nil
}

// Close unmaps and closes the underlying file.
func (s *Source) Close() error {
	var err error
	if s.data != nil {
		err = s.data.Unmap()
		s.data = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	s.buf = nil
	return err
}

// WriteSnappy stores text at path as a snappy stream readable by Open.
func WriteSnappy(path string, text []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write(text); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
