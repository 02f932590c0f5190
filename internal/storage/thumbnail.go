package storage

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// thumbWidth — ширина превью карточки продукта; высота по пропорции.
const thumbWidth = 320

// Thumbnail уменьшает 2D‑изображение продукта для списочных карточек.
// Возвращает JPEG независимо от исходного формата.
func Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
