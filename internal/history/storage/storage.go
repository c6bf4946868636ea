package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// ErrNoDestination — каталог назначения не существует.
	ErrNoDestination = errors.New("destination directory not found")
	// ErrInvalidFilename — из имени исходного файла нельзя получить имя результата.
	ErrInvalidFilename = errors.New("invalid filename")
)

// ============================================================
// Output Storage
// ============================================================

type OutputStorage struct {
	root string
}

// NewOutputStorage пишет в root; пустой root означает каталог загрузок пользователя.
func NewOutputStorage(root string) *OutputStorage {
	if root == "" {
		root = DefaultDir()
	}
	return &OutputStorage{root: root}
}

// DefaultDir — каталог загрузок по XDG.
func DefaultDir() string {
	return xdg.UserDirs.Download
}

func (s *OutputStorage) Root() string {
	return s.root
}

// JSONName: "scene.blk" -> "scene.json".
func JSONName(source string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(source, `\`, "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == ".." || stem == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, source)
	}
	return stem + ".json", nil
}

func (s *OutputStorage) JSONPath(source string) (string, error) {
	name, err := JSONName(source)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// EnsureRoot проверяет, что каталог назначения существует. Каталог не создаётся.
func (s *OutputStorage) EnsureRoot() error {
	if s.root == "" {
		return ErrNoDestination
	}
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNoDestination, s.root)
		}
		return fmt.Errorf("stat destination: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNoDestination, s.root)
	}
	return nil
}

// SaveJSON пишет <stem>.json в каталог назначения и возвращает путь.
func (s *OutputStorage) SaveJSON(source string, data []byte) (string, error) {
	if err := s.EnsureRoot(); err != nil {
		return "", err
	}
	target, err := s.JSONPath(source)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}
