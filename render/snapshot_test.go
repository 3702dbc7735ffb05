package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chwjbn/gl2-demo/render/gles/glestest"
)

func TestSnapshotFlipsRows(t *testing.T) {
	glCtx := glestest.New()
	r := NewFrameRenderer(glCtx)

	_, err := r.Snapshot()
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, r.Initialize(2, 2))

	// bottom row first, as glReadPixels returns it
	glCtx.Pixels = []byte{
		1, 1, 1, 255, 2, 2, 2, 255,
		3, 3, 3, 255, 4, 4, 4, 255,
	}

	img, err := r.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{3, 3, 3, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{4, 4, 4, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{1, 1, 1, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{2, 2, 2, 255}, img.RGBAAt(1, 1))
}
