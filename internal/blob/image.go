package blob

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// maxImageWidth keeps catalog images reasonable for grid thumbnails.
	maxImageWidth = 1280
	webpQuality   = 82
)

// EncodeWebP decodes an uploaded image, scales it down to the display width
// when needed and re-encodes it as lossy WebP.
func EncodeWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
