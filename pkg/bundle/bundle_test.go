package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morsedb/morsedb/pkg/database"
	"github.com/morsedb/morsedb/pkg/errors"
)

func TestLoadExportsGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "database", "testdata", "toggle.json"))
	require.NoError(t, err)

	for _, name := range []string{"toggle.yaml", "toggle.toml", "toggle.json"} {
		t.Run(name, func(t *testing.T) {
			b, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			src, err := b.Source()
			require.NoError(t, err)

			db, err := database.Build(src, database.Options{})
			require.NoError(t, err)

			got, err := database.Marshal(db, database.WriteOptions{})
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.YAML", FormatYAML},
		{"dir/a.yml", FormatYAML},
		{"a.toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("a.txt")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestDecodeUnknownFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"json", FormatJSON, `{"network":{"spec":"X : X"},"parameter_graph":{"size":1},"extra":1}`},
		{"yaml", FormatYAML, "network:\n  spec: 'X : X'\nparameter_graph:\n  size: 1\nextra: 1\n"},
		{"toml", FormatTOML, "extra = 1\n[network]\nspec = 'X : X'\n[parameter_graph]\nsize = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidBundle), "got %v", err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "toggle.yaml"))
	require.NoError(t, err)

	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, b, f))

			got, err := Decode(buf.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, b, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
}

func TestValidate(t *testing.T) {
	valid := func() *Bundle {
		return &Bundle{
			Network:        NetworkSpec{Spec: "X : X"},
			ParameterGraph: ParameterGraphSpec{Size: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Bundle)
		wantMsg string
	}{
		{"no network", func(b *Bundle) { b.Network.Spec = "" }, "Network.Spec is required"},
		{"spec and nodes", func(b *Bundle) { b.Network.Nodes = []string{"X"} }, "conflicts with"},
		{"bad model", func(b *Bundle) { b.Network.Model = "boolean" }, "Network.Model must be one of"},
		{"bad edge type", func(b *Bundle) {
			b.Network.Spec = ""
			b.Network.Nodes = []string{"X"}
			b.Network.Edges = []EdgeSpec{{Source: "X", Target: "X", Type: 0}}
		}, "Type must be one of"},
		{"empty parameter graph", func(b *Bundle) { b.ParameterGraph.Size = 0 }, "ParameterGraph.Size must be at least 1"},
		{"missing stg", func(b *Bundle) { b.Dynamics = []DynamicsSpec{{Parameter: 0}} }, "STG is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			require.NoError(t, b.Validate())

			tt.mutate(b)
			err := b.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidBundle))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	var nilBundle *Bundle
	assert.Error(t, nilBundle.Validate())
}

func TestSourceChecksIndices(t *testing.T) {
	base := func() *Bundle {
		b, err := Load(filepath.Join("testdata", "toggle.yaml"))
		require.NoError(t, err)
		return b
	}

	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{"adjacency count", func(b *Bundle) { b.ParameterGraph.Adjacencies = b.ParameterGraph.Adjacencies[:2] }},
		{"adjacency range", func(b *Bundle) { b.ParameterGraph.Adjacencies[0] = []int{3} }},
		{"parameter range", func(b *Bundle) { b.Dynamics[0].Parameter = 3 }},
		{"duplicate parameter", func(b *Bundle) { b.Dynamics[1].Parameter = 0 }},
		{"stg size", func(b *Bundle) { b.Dynamics[0].STG = b.Dynamics[0].STG[:3] }},
		{"stg range", func(b *Bundle) { b.Dynamics[0].STG[0] = []int{4} }},
		{"morse cell range", func(b *Bundle) { b.Dynamics[1].MorseNodes[0].Cells = []int{4} }},
		{"morse child range", func(b *Bundle) { b.Dynamics[2].MorseNodes[0].Children = []int{5} }},
		{"bad network", func(b *Bundle) { b.Network.Spec = "X : ~Z" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.mutate(b)
			_, err := b.Source()
			require.Error(t, err)
		})
	}
}

func TestSourceWithoutAdjacencies(t *testing.T) {
	b := &Bundle{
		Network:        NetworkSpec{Spec: "X : X"},
		ParameterGraph: ParameterGraphSpec{Size: 2},
		Dynamics: []DynamicsSpec{
			{Parameter: 1, STG: [][]int{{0}, {1}}},
		},
	}
	src, err := b.Source()
	require.NoError(t, err)
	assert.Equal(t, 2, src.ParameterGraph().Size())
	assert.Equal(t, []int{1}, b.Parameters())

	_, err = src.Dynamics(0)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestBuildNetworkEcology(t *testing.T) {
	b := &Bundle{Network: NetworkSpec{
		Model: "ecology",
		Nodes: []string{"A", "B"},
		Edges: []EdgeSpec{{Source: "A", Target: "B", Type: 1}},
	}}
	net, err := b.BuildNetwork()
	require.NoError(t, err)
	assert.Equal(t, "ecology", string(net.Model()))
	assert.Equal(t, []int{2, 1}, net.Domains())
}
