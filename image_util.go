package assimpexport

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/tiff"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// TextureInfo is the result of probing one texture referenced by a material.
type TextureInfo struct {
	Material string
	Path     string
	Format   string
	Width    int
	Height   int
	// Error is set when the texture is missing or cannot be decoded.
	Error string
}

// OK reports whether the texture decoded.
func (t TextureInfo) OK() bool {
	return t.Error == ""
}

func probeTexture(path string) (int, int, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	_, ft, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", errors.Wrapf(err, "decode %s", path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, "", err
	}
	img, err := readImage(f, ft)
	if err != nil {
		return 0, 0, "", errors.Wrapf(err, "decode %s", path)
	}
	bd := img.Bounds()
	return bd.Dx(), bd.Dy(), ft, nil
}

func readImage(rd io.Reader, ft string) (image.Image, error) {
	switch ft {
	case "jpeg", "jpg":
		return jpeg.Decode(rd)
	case "png":
		return png.Decode(rd)
	case "gif":
		return gif.Decode(rd)
	case "bmp":
		return bmp.Decode(rd)
	case "tif", "tiff":
		return tiff.Decode(rd)
	default:
		return nil, errors.Errorf("unknown image format %q", ft)
	}
}
