package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the JPEG quality used for previews unless overridden.
const DefaultJPEGQuality = 85

// EncodeResult contains an encoded image ready for transport.
type EncodeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// imageFormat maps an output format name to the imaging package's format.
func imageFormat(format string) (imaging.Format, string, error) {
	switch format {
	case "", "jpeg", "jpg":
		return imaging.JPEG, "image/jpeg", nil
	case "png":
		return imaging.PNG, "image/png", nil
	default:
		return 0, "", fmt.Errorf("unsupported output format %q: use jpeg or png", format)
	}
}

// OutputMimeType validates an output format name ("", "jpeg", "jpg" or
// "png") and returns its MIME type.
func OutputMimeType(format string) (string, error) {
	_, mime, err := imageFormat(format)
	return mime, err
}

// Encode encodes img as JPEG (default) or PNG and returns it base64 encoded.
// quality applies to JPEG only; values outside 1-100 fall back to
// DefaultJPEGQuality.
func Encode(img image.Image, format string, quality int) (*EncodeResult, error) {
	f, mime, err := imageFormat(format)
	if err != nil {
		return nil, err
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodeResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    mime,
	}, nil
}

// Save writes img to path. The format is chosen from the file extension.
func Save(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// FitWithin downscales img so neither side exceeds maxDim, keeping the aspect
// ratio. It returns the image to process and the factor that maps original
// coordinates onto it. Images that already fit, or maxDim <= 0, are returned
// as-is with a factor of 1.
func FitWithin(img image.Image, maxDim int) (image.Image, float64) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img, 1
	}

	fitted := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	return fitted, float64(fitted.Bounds().Dx()) / float64(w)
}
