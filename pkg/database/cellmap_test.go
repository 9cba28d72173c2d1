package database

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morsedb/morsedb/pkg/errors"
	"github.com/morsedb/morsedb/pkg/network"
)

func TestCellMapToggle(t *testing.T) {
	net, err := network.Parse("X : ~Y\nY : X", network.ModelDefault)
	require.NoError(t, err)

	cm, err := NewCellMap(net)
	require.NoError(t, err)
	require.Equal(t, 4, cm.Len())

	want := []int{27, 28, 30, 31}
	for i, c := range want {
		got, err := cm.Complex(i)
		require.NoError(t, err)
		assert.Equal(t, c, got, "analysis cell %d", i)

		back, ok := cm.Analysis(c)
		assert.True(t, ok)
		assert.Equal(t, i, back)
	}

	_, err = cm.Complex(4)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidIndex))
	_, ok := cm.Analysis(29)
	assert.False(t, ok, "fringe cell must not be mapped")

	cells, err := cm.Cells(nil)
	require.NoError(t, err)
	assert.NotNil(t, cells)
}

// randomNetwork builds a network over size nodes whose edges are chosen by
// the low bits of mask.
func randomNetwork(size int, mask uint32) (*network.Network, error) {
	names := make([]string, size)
	for i := range names {
		names[i] = fmt.Sprintf("N%d", i)
	}
	var edges []network.Edge
	bit := 0
	for v := range size {
		for u := range size {
			if mask&(1<<bit) != 0 {
				edges = append(edges, network.Edge{
					Source:     names[u],
					Target:     names[v],
					Activating: mask&(1<<(bit+9)) != 0,
				})
			}
			bit++
		}
	}
	return network.New(names, edges, network.ModelDefault)
}

func TestCellMapBijection(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("analysis cells map one-to-one onto non-fringe top cells", prop.ForAll(
		func(size int, mask uint32) bool {
			net, err := randomNetwork(size, mask)
			if err != nil {
				return false
			}
			cm, err := NewCellMap(net)
			if err != nil {
				return false
			}
			cc := cm.CubicalComplex()

			topNonFringe := 0
			cc.Each(cc.Dimension(), func(cell int) bool {
				if !cc.RightFringe(cell) {
					topNonFringe++
				}
				return true
			})
			if cm.Len() != net.DomainCount() || cm.Len() != topNonFringe {
				return false
			}

			prev := -1
			for i := range cm.Len() {
				c, err := cm.Complex(i)
				if err != nil || c <= prev {
					return false
				}
				if cc.Dim(c) != net.Size() || cc.RightFringe(c) {
					return false
				}
				if back, ok := cm.Analysis(c); !ok || back != i {
					return false
				}
				prev = c
			}
			return true
		},
		gen.IntRange(1, 3),
		gen.UInt32(),
	))

	properties.Property("analysis index order is axis-0-fastest over domain coordinates", prop.ForAll(
		func(size int, mask uint32) bool {
			net, err := randomNetwork(size, mask)
			if err != nil {
				return false
			}
			cm, err := NewCellMap(net)
			if err != nil {
				return false
			}
			domains := net.Domains()
			for i := range cm.Len() {
				c, _ := cm.Complex(i)
				coords := cm.CubicalComplex().Coordinates(c)
				rest := i
				for d, n := range domains {
					if coords[d] != rest%n {
						return false
					}
					rest /= n
				}
			}
			return true
		},
		gen.IntRange(1, 3),
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
