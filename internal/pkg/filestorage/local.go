// Package filestorage stores uploaded post images on the local filesystem.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/deren/greenhub/internal/pkg/logger"
)

// LocalStorage saves uploads under a base directory and returns paths served
// by the /uploads static route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL, when
// set, is prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile saves an uploaded file under a subdirectory and returns its
// accessible path. A nil fileHeader is not an error; uploads are optional.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions.
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := path(ls.baseURL, subPath, uniqueFilename)
	logger.Info().Str("filename", fileHeader.Filename).Str("savedAs", accessiblePath).Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}
	name := filepath.Base(filePath)
	sub := filepath.Base(filepath.Dir(filePath))
	full := filepath.Join(ls.basePath, sub, name)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", full, err)
	}
	return nil
}

func path(baseURL, subPath, filename string) string {
	parts := []string{}
	if baseURL != "" {
		parts = append(parts, strings.TrimRight(baseURL, "/"))
	} else {
		parts = append(parts, "uploads")
	}
	if subPath != "" {
		parts = append(parts, subPath)
	}
	parts = append(parts, filename)
	return strings.Join(parts, "/")
}
