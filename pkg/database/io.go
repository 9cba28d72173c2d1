package database

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"

	"github.com/morsedb/morsedb/pkg/errors"
)

// snappyMagic is the stream identifier chunk that opens every snappy
// framed stream.
const snappyMagic = "\xff\x06\x00\x00sNaPpY"

// WriteOptions controls how a database is encoded.
type WriteOptions struct {
	// Indent pretty-prints the JSON with two-space indentation.
	Indent bool
	// Compress wraps the JSON in a snappy framed stream.
	Compress bool
}

// Write encodes db as JSON and writes it to w.
func Write(w io.Writer, db *Database, opts WriteOptions) error {
	if opts.Compress {
		sw := snappy.NewBufferedWriter(w)
		if err := encode(sw, db, opts.Indent); err != nil {
			return err
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("flush snappy stream: %w", err)
		}
		return nil
	}
	return encode(w, db, opts.Indent)
}

func encode(w io.Writer, db *Database, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal encodes db into memory.
func Marshal(db *Database, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, db, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes db to a file at path. The file is opened and closed around
// a single write; a failed close is reported.
func Save(path string, db *Database, opts WriteOptions) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(f, db, opts)
}

// SaveBytes writes an already encoded database to path.
func SaveBytes(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read decodes a database from r, transparently handling snappy framed
// input.
func Read(r io.Reader) (*Database, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(snappyMagic)); err == nil && string(head) == snappyMagic {
		r = snappy.NewReader(br)
	} else {
		r = br
	}

	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode database")
	}
	return &db, nil
}

// Load reads a database file.
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
