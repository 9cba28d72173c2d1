package cache

// ScopedKeyer wraps a Keyer with a prefix so that separate namespaces never
// share entries. The CLI scopes keys by build version, which invalidates
// every entry when the export format may have changed.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ExportKey generates a prefixed export key.
func (k *ScopedKeyer) ExportKey(bundleHash string, opts ExportKeyOpts) string {
	return k.prefix + k.inner.ExportKey(bundleHash, opts)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(bundleHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(bundleHash, opts)
}
