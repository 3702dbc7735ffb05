package render

import "image"

// Snapshot reads the current framebuffer. GL returns rows bottom-up, the
// image is top-down.
func (r *FrameRenderer) Snapshot() (*image.RGBA, error) {

	if r.mState != StateReady {
		return nil, ErrNotReady
	}

	width := r.mWidth
	height := r.mHeight

	pixelData := make([]uint8, width*height*4)
	r.mGL.ReadPixels(pixelData, 0, 0, int32(width), int32(height))
	r.checkError("glReadPixels")

	dstImg := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		srcRow := pixelData[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(dstImg.Pix[y*dstImg.Stride:y*dstImg.Stride+rowLen], srcRow)
	}

	return dstImg, nil
}
