// Package output writes a run's generated files as one set: either every
// file lands or none of the run's files are left behind.
package output

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	yaml "gopkg.in/yaml.v3"
)

// ManifestName is the file name of the run manifest.
const ManifestName = "gen.manifest.yaml"

// File is one generated output file.
type File struct {
	Name string
	Data []byte
}

// Manifest lists the digests of the files written by a run.
type Manifest struct {
	Run       string          `yaml:"run"`
	Version   string          `yaml:"version"`
	Generated time.Time       `yaml:"generated"`
	Files     []ManifestEntry `yaml:"files"`
}

type ManifestEntry struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	Digest string `yaml:"blake2b"`
}

// Writer writes files into a directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Digest returns the hex BLAKE2b-256 digest of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewManifest describes files without writing them.
func NewManifest(run, version string, files []File) Manifest {
	m := Manifest{Run: run, Version: version, Generated: time.Now().UTC()}
	for _, f := range files {
		m.Files = append(m.Files, ManifestEntry{Name: f.Name, Size: len(f.Data), Digest: Digest(f.Data)})
	}
	return m
}

// ManifestFile marshals m into a File.
func ManifestFile(m Manifest) (File, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return File{}, fmt.Errorf("marshal manifest: %w", err)
	}
	return File{Name: ManifestName, Data: data}, nil
}

// Write writes all files. If any write fails, the files already written by
// this call are removed before the error is returned.
func (w *Writer) Write(files []File) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.Name] {
			return fmt.Errorf("duplicate output file %s", f.Name)
		}
		seen[f.Name] = true
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(w.dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return errors.Join(fmt.Errorf("write %s: %w", f.Name, err), w.rollback(written))
		}
		written = append(written, path)
		w.logger.Debug("Wrote file", "path", path, "bytes", len(f.Data))
	}
	return nil
}

func (w *Writer) rollback(paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("rollback %s: %w", p, err))
		}
	}
	if len(paths) > 0 {
		w.logger.Warn("Removed partially written output", "files", len(paths))
	}
	return errors.Join(errs...)
}
