package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sievert3d/internal/surface"
)

func TestNormalAttrib(t *testing.T) {
	withNormals := &surface.Mesh{
		Vertices:  []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		TexCoords: []float32{0, 0, 1, 0, 0, 1},
	}
	fromBuffer, _ := normalAttrib(withNormals)
	require.True(t, fromBuffer)

	// An empty normal stream must not be fetched per vertex.
	bare := &surface.Mesh{Vertices: withNormals.Vertices, TexCoords: withNormals.TexCoords}
	require.NoError(t, bare.Validate())
	fromBuffer, constant := normalAttrib(bare)
	require.False(t, fromBuffer)
	require.Equal(t, [3]float32{0, 0, 1}, constant)
}
