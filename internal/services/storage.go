package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type StorageService interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) ([]byte, error)
	GetFilePath(filename string) (string, error)
	EnsureOutputDir() error
}

type storageService struct {
	outputDir string
}

func NewStorageService(outputDir string) StorageService {
	return &storageService{
		outputDir: outputDir,
	}
}

func (s *storageService) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// Save writes data under filename, replacing any existing file.
func (s *storageService) Save(filename string, data []byte) (string, error) {
	filePath, err := s.GetFilePath(filename)
	if err != nil {
		return "", err
	}

	if err := s.EnsureOutputDir(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.outputDir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := os.Rename(tmpName, filePath); err != nil {
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}

	return filePath, nil
}

func (s *storageService) Open(filename string) ([]byte, error) {
	filePath, err := s.GetFilePath(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// GetFilePath rejects names that could leave the output directory.
func (s *storageService) GetFilePath(filename string) (string, error) {
	if filename == "" ||
		filename == "." ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) ||
		strings.ContainsRune(filename, 0) ||
		strings.HasPrefix(filename, ".tmp-") {
		return "", fmt.Errorf("%w: invalid file name %q", ErrValidation, filename)
	}
	return filepath.Join(s.outputDir, filename), nil
}
