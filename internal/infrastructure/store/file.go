package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
)

const (
	DatasetFile = "market_data.json"
	ReportFile  = "audit_report.json"
)

// FileStore persists run artifacts as pretty-printed JSON. Writes go through
// a temp file and rename so readers never observe a partial document.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

var (
	_ application.DatasetStore = (*FileStore)(nil)
	_ application.ReportStore  = (*FileStore)(nil)
)

func (s *FileStore) WriteDataset(_ context.Context, ds *domain.MarketDataset) error {
	return s.writeJSON(DatasetFile, ds)
}

func (s *FileStore) ReadDataset(_ context.Context) (*domain.MarketDataset, error) {
	var ds domain.MarketDataset
	if err := s.readJSON(DatasetFile, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *FileStore) WriteReport(_ context.Context, r *domain.AuditReport) error {
	return s.writeJSON(ReportFile, r)
}

func (s *FileStore) ReadReport(_ context.Context) (*domain.AuditReport, error) {
	var r domain.AuditReport
	if err := s.readJSON(ReportFile, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
