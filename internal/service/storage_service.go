package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StorageService keeps generated speech audio on the local filesystem under
// a single directory with random file names.
type StorageService struct {
	audioDir string
}

func NewStorageService(audioDir string) (*StorageService, error) {
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &StorageService{audioDir: audioDir}, nil
}

func (s *StorageService) AudioDir() string {
	return s.audioDir
}

// SaveAudio writes a WAV payload under a fresh uuid name and returns the
// file name.
func (s *StorageService) SaveAudio(data []byte) (string, error) {
	name := uuid.New().String() + ".wav"
	path := filepath.Join(s.audioDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return name, nil
}
