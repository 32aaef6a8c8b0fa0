// Package storage provides file and JSON persistence in a per-application
// directory, plus a durable key/value preference store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/go-droid/droid/pkg/logging"
)

// Manager owns the application's data directory (~/.<appname> by default)
// and performs plain file and JSON persistence inside it.
type Manager struct {
	appName string
	dir     string
	log     *logging.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDir overrides the application directory. Used by tests and embedders
// with managed data locations.
func WithDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithManagerLogger injects the manager's logger.
func WithManagerLogger(log *logging.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates the application directory if needed and returns a
// manager rooted there.
func NewManager(appName string, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		appName: appName,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		m.dir = filepath.Join(home, "."+strings.ToLower(appName))
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create app directory %s: %w", m.dir, err)
	}
	m.log.Info("app directory ready", zap.String("dir", m.dir))
	return m, nil
}

// Dir returns the application directory path.
func (m *Manager) Dir() string { return m.dir }

// WriteFile writes content to name inside the app directory, creating parent
// subdirectories as needed. name may contain path separators.
func (m *Manager) WriteFile(name, content string) error {
	path := filepath.Join(m.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	m.log.Debug("file written", zap.String("path", path))
	return nil
}

// ReadFile reads the named file from the app directory.
func (m *Manager) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// DeleteFile removes the named file from the app directory.
func (m *Manager) DeleteFile(name string) error {
	if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// ListFiles returns the regular file names in the given subdirectory of the
// app directory ("" for the root). A missing subdirectory yields an empty
// list.
func (m *Manager) ListFiles(subdir string) ([]string, error) {
	dir := filepath.Join(m.dir, subdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// SaveJSON writes v as indented JSON to the named file.
func (m *Manager) SaveJSON(name string, v any) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return m.WriteFile(name, string(data))
}

// LoadJSON decodes the named JSON file into out.
func (m *Manager) LoadJSON(name string, out any) error {
	content, err := m.ReadFile(name)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
