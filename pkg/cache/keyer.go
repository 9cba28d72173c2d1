package cache

import "fmt"

// Keyer builds cache keys from the inputs of a cached computation.
type Keyer interface {
	// ExportKey identifies an encoded database.
	ExportKey(bundleHash string, opts ExportKeyOpts) string

	// RenderKey identifies a rendered Morse graph of one parameter.
	RenderKey(bundleHash string, opts RenderKeyOpts) string
}

// ExportKeyOpts lists everything besides the bundle that changes an export.
type ExportKeyOpts struct {
	Parameters []int `json:"parameters"`
	Indent     bool  `json:"indent"`
	Compress   bool  `json:"compress"`
}

// RenderKeyOpts lists everything besides the bundle that changes a render.
type RenderKeyOpts struct {
	Parameter int    `json:"parameter"`
	Format    string `json:"format"`
	Detailed  bool   `json:"detailed"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ExportKey returns "export:<bundle>:<hash(opts)>".
func (DefaultKeyer) ExportKey(bundleHash string, opts ExportKeyOpts) string {
	return hashKey(fmt.Sprintf("export:%s", bundleHash), opts)
}

// RenderKey returns "render:<bundle>:<hash(opts)>".
func (DefaultKeyer) RenderKey(bundleHash string, opts RenderKeyOpts) string {
	return hashKey(fmt.Sprintf("render:%s", bundleHash), opts)
}

var _ Keyer = DefaultKeyer{}
