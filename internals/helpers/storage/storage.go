// file: internals/helpers/storage/storage.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"profoli_backend/internals/configs"
	"profoli_backend/internals/constants"
)

const publicPrefix = "/uploads/"

// UploadDir é o diretório local onde apostilas e capas ficam gravadas.
func UploadDir() string {
	return configs.GetEnv("UPLOAD_DIR", "uploads")
}

func EnsureUploadDir() error {
	return os.MkdirAll(UploadDir(), 0o755)
}

// SaveUpload grava o arquivo enviado com um nome único e devolve a URL
// pública e o MIME detectado. O conteúdo é gravado como veio, sem transformação.
func SaveUpload(fh *multipart.FileHeader) (url string, fileType string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("falha ao abrir arquivo: %w", err)
	}
	defer src.Close()

	name := uniqueFilename(fh.Filename)
	dst, err := os.Create(filepath.Join(UploadDir(), name))
	if err != nil {
		return "", "", fmt.Errorf("falha ao criar arquivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("falha ao gravar arquivo: %w", err)
	}

	fileType = constants.DetectFileType(fh.Filename, fh.Header.Get("Content-Type"))
	return publicPrefix + name, fileType, nil
}

// Remove apaga do disco um arquivo referenciado por URL pública. URLs fora
// de /uploads/ (ex. storage externo antigo) são ignoradas.
func Remove(url string) error {
	if !strings.HasPrefix(url, publicPrefix) {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, publicPrefix))
	path := filepath.Join(UploadDir(), name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
