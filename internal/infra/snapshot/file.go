package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// FileStore файловое хранилище снапшотов: один JSON документ на диске.
// Запись атомарна - документ пишется во временный файл и переименовывается.
type FileStore struct {
	path string
}

// NewFileStore создает файловое хранилище снапшотов
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save сериализует снапшот и атомарно записывает его на диск
func (s *FileStore) Save(ctx context.Context, snap *domain.StoreSnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", ErrSaveSnapshot, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %q: %v", ErrSaveSnapshot, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrSaveSnapshot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrSaveSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrSaveSnapshot, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename temp file: %v", ErrSaveSnapshot, err)
	}

	return nil
}

// Load читает и десериализует снапшот с диска
func (s *FileStore) Load(ctx context.Context) (*domain.StoreSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("%w: read file %q: %v", ErrLoadSnapshot, s.path, err)
	}

	var snap domain.StoreSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: unmarshal document: %v", ErrLoadSnapshot, err)
	}

	return &snap, nil
}
