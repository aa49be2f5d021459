package photos

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
)

const ContentTypeJPEG = "image/jpeg"

type CompressParams struct {
	MaxDimension int
	MaxBytes     int
	QualityStart int
	QualityStep  int
	QualityFloor int
}

func DefaultCompressParams() CompressParams {
	return CompressParams{
		MaxDimension: 1280,
		MaxBytes:     900 * 1024,
		QualityStart: 72,
		QualityStep:  8,
		QualityFloor: 40,
	}
}

type Compressed struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
	Quality     int
}

// Compress decodes an image, fits it into MaxDimension and re-encodes it as
// JPEG, lowering the quality step by step until it fits into MaxBytes.
func Compress(r io.Reader, params CompressParams) (*Compressed, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errs.Validation("file", "cannot decode image, format not supported")
	}

	bounds := img.Bounds()
	if bounds.Dx() > params.MaxDimension || bounds.Dy() > params.MaxDimension {
		img = imaging.Fit(img, params.MaxDimension, params.MaxDimension, imaging.Lanczos)
	}

	quality := params.QualityStart
	out, err := encodeJPEG(img, quality)
	if err != nil {
		return nil, err
	}
	for len(out) > params.MaxBytes && quality > params.QualityFloor {
		quality -= params.QualityStep
		if out, err = encodeJPEG(img, quality); err != nil {
			return nil, err
		}
	}
	if len(out) > params.MaxBytes {
		return nil, errs.Validation("file", "image too large even after compression, try a lower resolution")
	}

	fitted := img.Bounds()
	return &Compressed{
		Data:        out,
		Width:       fitted.Dx(),
		Height:      fitted.Dy(),
		ContentType: ContentTypeJPEG,
		Quality:     quality,
	}, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg q=%d: %w", quality, err)
	}
	return buf.Bytes(), nil
}

// Thumbnail crops and scales an encoded image to a size x size JPEG.
func Thumbnail(data []byte, size, quality int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode stored image: %w", err)
	}
	return encodeJPEG(imaging.Thumbnail(img, size, size, imaging.Lanczos), quality)
}
