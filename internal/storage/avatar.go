package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	AvatarSize     = 256
	MaxAvatarBytes = 5 << 20
	avatarQuality  = 80
)

var ErrUnsupportedImage = errors.New("unsupported image")

// TranscodeAvatar decodes a JPEG, PNG or WebP image, center-crops it to a
// square, scales it to AvatarSize and re-encodes it as lossy WebP.
func TranscodeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxAvatarBytes))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	b := src.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	if side == 0 {
		return nil, ErrUnsupportedImage
	}

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
