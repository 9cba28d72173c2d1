package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/morsedb/morsedb/pkg/bundle"
	"github.com/morsedb/morsedb/pkg/cache"
	"github.com/morsedb/morsedb/pkg/database"
	"github.com/morsedb/morsedb/pkg/dynamics"
	"github.com/morsedb/morsedb/pkg/observability"
	"github.com/morsedb/morsedb/pkg/render/morsegraph"
)

// Cache key types reported to observability hooks.
const (
	keyTypeExport = "export"
	keyTypeRender = "render"
)

// Runner executes exports with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads a bundle, exports it and writes the encoded database.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	b, raw, err := bundle.ReadFile(opts.Bundle)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.BundleHash = cache.Hash(raw)
	result.Stats.LoadTime = time.Since(loadStart)
	opts.Logger.Debug("loaded bundle",
		"path", opts.Bundle,
		"hash", result.BundleHash[:12],
		"duration", result.Stats.LoadTime)

	// Stage 2: Export (or cache hit)
	exportStart := time.Now()
	key := r.Keyer.ExportKey(result.BundleHash, opts.ExportKeyOpts())
	if data, ok := r.cached(ctx, key, keyTypeExport, opts.Refresh); ok {
		result.Data = data
		result.CacheHit = true
		result.Parameters = len(opts.Parameters)
		if opts.Parameters == nil {
			result.Parameters = b.ParameterGraph.Size
		}
		opts.Logger.Info("using cached export", "bytes", len(data))
	} else {
		db, err := r.export(ctx, b, opts)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		data, err := database.Marshal(db, opts.WriteOptions())
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		result.Database = db
		result.Data = data
		result.Parameters = len(db.Dynamics)
		r.store(ctx, key, keyTypeExport, data, cache.TTLExport)
	}
	result.Stats.ExportTime = time.Since(exportStart)

	// Stage 3: Write
	if opts.Output != "" {
		writeStart := time.Now()
		if err := database.SaveBytes(opts.Output, result.Data); err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
		result.Stats.WriteTime = time.Since(writeStart)
		opts.Logger.Debug("wrote database", "path", opts.Output, "bytes", len(result.Data))
	}

	return result, nil
}

// export builds the database, reporting progress through hooks.
func (r *Runner) export(ctx context.Context, b *bundle.Bundle, opts Options) (db *database.Database, err error) {
	src, err := b.Source()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := len(opts.Parameters)
	if opts.Parameters == nil {
		total = src.ParameterGraph().Size()
	}

	hooks := observability.Export()
	hooks.OnExportStart(ctx, src.Network().Size(), total)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, total, time.Since(start), err)
	}()

	db, err = database.Build(src, database.Options{
		Parameters: opts.Parameters,
		Progress: func(done, total, parameter int) {
			hooks.OnParameterExported(ctx, parameter, done, total)
			if opts.Progress != nil {
				opts.Progress(done, total, parameter)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts.Logger.Info("exported database",
		"nodes", len(db.Network.Nodes),
		"cells", len(db.Complex.Cells),
		"parameters", len(db.Dynamics),
		"duration", time.Since(start).Round(time.Millisecond))
	return db, nil
}

// RenderMorseGraph draws the Morse graph of one parameter of a bundle.
// It returns the rendered bytes and whether they came from the cache.
func (r *Runner) RenderMorseGraph(ctx context.Context, opts RenderOptions) ([]byte, bool, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	b, raw, err := bundle.ReadFile(opts.Bundle)
	if err != nil {
		return nil, false, fmt.Errorf("load: %w", err)
	}
	key := r.Keyer.RenderKey(cache.Hash(raw), cache.RenderKeyOpts{
		Parameter: opts.Parameter,
		Format:    opts.Format,
		Detailed:  opts.Detailed,
	})
	if data, ok := r.cached(ctx, key, keyTypeRender, opts.Refresh); ok {
		return data, true, nil
	}

	src, err := b.Source()
	if err != nil {
		return nil, false, fmt.Errorf("load: %w", err)
	}
	entry, err := exportOne(src, opts.Parameter)
	if err != nil {
		return nil, false, fmt.Errorf("export: %w", err)
	}

	hooks := observability.Export()
	hooks.OnRenderStart(ctx, opts.Parameter, opts.Format)
	start := time.Now()
	data, err := morsegraph.Render(ctx, entry, opts.Format, morsegraph.Options{Detailed: opts.Detailed})
	hooks.OnRenderComplete(ctx, opts.Parameter, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("render: %w", err)
	}

	r.Logger.Debug("rendered morse graph",
		"parameter", opts.Parameter,
		"format", opts.Format,
		"nodes", len(entry.MorseGraph),
		"duration", time.Since(start).Round(time.Millisecond))
	r.store(ctx, key, keyTypeRender, data, cache.TTLRender)
	return data, false, nil
}

func exportOne(src dynamics.Source, parameter int) (database.DynamicsEntry, error) {
	if err := database.ValidateParameters([]int{parameter}, src.ParameterGraph().Size()); err != nil {
		return database.DynamicsEntry{}, err
	}
	cm, err := database.NewCellMap(src.Network())
	if err != nil {
		return database.DynamicsEntry{}, err
	}
	return database.BuildEntry(cm, src, parameter)
}

// cached looks key up unless refresh is set. Decode or read failures are
// treated as misses.
func (r *Runner) cached(ctx context.Context, key, keyType string, refresh bool) ([]byte, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		if err != nil {
			r.Logger.Debug("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// store writes to the cache. Failures only cost a future recomputation.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
