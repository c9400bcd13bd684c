// file: internals/helpers/storage/cover_image.go
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	coverMaxWidth    = 1280
	coverWebPQuality = 80
)

// SaveCoverWebP grava a imagem de capa convertida para webp, limitada a
// coverMaxWidth de largura. Capas chegam do formulário em png/jpeg e pesam
// alguns MB; o webp derruba isso para a casa dos KB.
func SaveCoverWebP(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("falha ao abrir capa: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("capa inválida: %w", err)
	}

	if img.Bounds().Dx() > coverMaxWidth {
		img = imaging.Resize(img, coverMaxWidth, 0, imaging.Lanczos)
	}

	name := uuid.NewString() + ".webp"
	dst, err := os.Create(filepath.Join(UploadDir(), name))
	if err != nil {
		return "", fmt.Errorf("falha ao criar capa: %w", err)
	}
	defer dst.Close()

	if err := webp.Encode(dst, img, &webp.Options{Quality: coverWebPQuality}); err != nil {
		return "", fmt.Errorf("falha ao converter capa: %w", err)
	}

	return publicPrefix + name, nil
}
