// Package pipeline runs exports end to end.
//
// The pipeline loads a bundle, exports it into a database document, encodes
// the document and writes it out, consulting a cache so that re-exporting an
// unchanged bundle with the same options costs one file read. The CLI is a
// thin layer over [Runner].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Bundle: "toggle.yaml",
//	    Output: "toggle.json",
//	})
//
// Morse graph images go through [Runner.RenderMorseGraph], which exports only
// the requested parameter.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/morsedb/morsedb/pkg/cache"
	"github.com/morsedb/morsedb/pkg/database"
	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/render/morsegraph"
)

// DefaultRenderFormat is the default Morse graph output format.
const DefaultRenderFormat = morsegraph.FormatSVG

// =============================================================================
// Options
// =============================================================================

// Options configures one export.
type Options struct {
	// Bundle is the path of the bundle file to export.
	Bundle string `json:"bundle"`

	// Output is the database path. Empty skips writing; the encoded document
	// is still returned in [Result.Data].
	Output string `json:"output,omitempty"`

	// Parameters selects the exported parameters in output order.
	// Nil exports every parameter of the parameter graph.
	Parameters []int `json:"parameters,omitempty"`

	Indent   bool `json:"indent,omitempty"`
	Compress bool `json:"compress,omitempty"`

	// Refresh ignores cached results but still stores the new one.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger                      `json:"-"`
	Progress func(done, total, parameter int) `json:"-"`
}

// SetDefaults fills unset runtime options.
func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks required fields.
func (o *Options) Validate() error {
	if o.Bundle == "" {
		return errors.New(errors.ErrCodeInvalidInput, "bundle path is required")
	}
	if o.Output != "" {
		if err := errors.ValidateOutputPath(o.Output); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptions returns the encoder settings.
func (o *Options) WriteOptions() database.WriteOptions {
	return database.WriteOptions{Indent: o.Indent, Compress: o.Compress}
}

// ExportKeyOpts returns cache key options for the export.
func (o *Options) ExportKeyOpts() cache.ExportKeyOpts {
	return cache.ExportKeyOpts{
		Parameters: o.Parameters,
		Indent:     o.Indent,
		Compress:   o.Compress,
	}
}

// RenderOptions configures one Morse graph rendering.
type RenderOptions struct {
	Bundle    string `json:"bundle"`
	Parameter int    `json:"parameter"`
	Format    string `json:"format,omitempty"`
	Detailed  bool   `json:"detailed,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"`
}

// SetDefaults fills unset fields.
func (o *RenderOptions) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultRenderFormat
	}
}

// Validate checks required fields.
func (o *RenderOptions) Validate() error {
	if o.Bundle == "" {
		return errors.New(errors.ErrCodeInvalidInput, "bundle path is required")
	}
	if o.Parameter < 0 {
		return errors.New(errors.ErrCodeInvalidIndex, "parameter %d is negative", o.Parameter)
	}
	return morsegraph.ValidateFormat(o.Format)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of an export.
type Result struct {
	// Database is the exported document. It is nil on a cache hit, where
	// only the encoded bytes are available.
	Database *database.Database

	// Data is the encoded document as written to Output.
	Data []byte

	// BundleHash is the SHA-256 of the bundle file.
	BundleHash string

	// Parameters is the number of exported parameters.
	Parameters int

	Stats Stats

	// CacheHit reports whether Data came from the cache.
	CacheHit bool
}

// Stats contains export timings.
type Stats struct {
	LoadTime   time.Duration
	ExportTime time.Duration
	WriteTime  time.Duration
}
