package services

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	config "github.com/meePwn1/maqsad-back/configs"
)

const (
	uploadsDirName = "uploads"
	maxFileSize    = 5 * 1024 * 1024
)

var (
	ErrInvalidFileType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file is too large")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// SaveFile validates the upload, writes it under uploads/<folder> with a
// unique name and returns the public URL built from BACKEND_URL.
func SaveFile(file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", nil
	}

	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", ErrInvalidFileType
	}
	if file.Size > maxFileSize {
		return "", ErrFileTooLarge
	}

	dir := filepath.Join(uploadsDirName, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	fileName := uuid.NewString() + filepath.Ext(file.Filename)
	fullPath := filepath.Join(dir, fileName)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", err
	}

	backendURL := strings.TrimRight(config.Config("BACKEND_URL"), "/")
	return backendURL + "/" + filepath.ToSlash(fullPath), nil
}

// DeleteFile removes a previously saved upload. A missing file is not an
// error, the reference is already gone.
func DeleteFile(fileURL string) {
	if fileURL == "" {
		return
	}

	idx := strings.Index(fileURL, uploadsDirName+"/")
	if idx < 0 {
		return
	}
	path := fileURL[idx:]

	if err := os.Remove(filepath.FromSlash(path)); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete file %s: %v", path, err)
	}
}

// ReplaceFile deletes the old upload (when present) and stores the new one.
func ReplaceFile(oldFileURL string, file *multipart.FileHeader, folder string) (string, error) {
	if oldFileURL != "" {
		DeleteFile(oldFileURL)
	}
	return SaveFile(file, folder)
}
