// discovery.go
// Config discovery and loading logic for ljmcheck
package internal

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// LoadConfig loads and merges the ConfigFileName found in each of dirs, from
// least to most specific. Directories without a config file are skipped. The
// result holds only what the files set; use Settings to apply defaults.
func LoadConfig(fsys FileSystem, dirs []string) (*Config, error) {
	configs, err := collectConfigs(fsys, dirs)
	if err != nil {
		return nil, err
	}
	merged := mergeConfigs(configs)
	EnableDebug(merged) // Enable internal debug output based on config
	return merged, nil
}

// collectConfigs loads every config file present in dirs, keeping their order.
func collectConfigs(fsys FileSystem, dirs []string) ([]*Config, error) {
	var configs []*Config
	seen := map[string]bool{}
	for _, dir := range dirs {
		path := filepath.Join(dir, ConfigFileName)
		if seen[path] {
			continue
		}
		seen[path] = true
		if !fsys.Exists(path) {
			Debugf("no config at %s", path)
			continue
		}
		cfg, err := loadConfigFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", path, err)
		}
		Debugf("loaded config %s", path)
		configs = append(configs, cfg)
	}
	return configs, nil
}

// loadConfigFile loads a single config file from the FS and parses it into a Config struct.
func loadConfigFile(fsys FileSystem, path string) (*Config, error) {
	fileBytes, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(fileBytes, path)
}

// ParseConfig decodes HCL source into a Config. filename is used in diagnostics.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error: %s", diags.Error())
	}
	var partial Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &partial)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("decode error: %s", decodeDiags.Error())
	}
	return &partial, nil
}

// FileSystem defines the read-only file operations ljmcheck needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Exists(name string) bool
}

// WrappedFS implements FileSystem for a generic fs.FS. Names follow fs.ValidPath.
type WrappedFS struct {
	FS fs.FS
}

func NewWrappedFS(root string) *WrappedFS {
	return &WrappedFS{
		FS: os.DirFS(root),
	}
}

func (d *WrappedFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(d.FS, filepath.ToSlash(filepath.Clean(name)))
}

// Exists checks if a file exists in the wrapped filesystem.
func (d *WrappedFS) Exists(name string) bool {
	stat, err := fs.Stat(d.FS, filepath.ToSlash(filepath.Clean(name)))
	return err == nil && !stat.IsDir()
}

// OSFS implements FileSystem on the host filesystem. Relative names resolve
// against the process working directory.
type OSFS struct{}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) Exists(name string) bool {
	stat, err := os.Stat(name)
	return err == nil && !stat.IsDir()
}
