package model

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
)

// SaveArtifact gob-encodes the classifier's parameters to path.
func SaveArtifact(path string, c *Classifier) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return f.Close()
}

// LoadArtifact reads a classifier back from a gob artifact file.
func LoadArtifact(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var c Classifier
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if len(c.Samples) == 0 {
		return nil, fmt.Errorf("artifact %s holds no training samples", path)
	}
	return &c, nil
}

// SaveMetadata writes the artifact description as JSON.
func SaveMetadata(path string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// LoadMetadata reads the artifact description.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata: %w", err)
	}
	return meta, nil
}

// Loader resolves the artifact and metadata paths for the handlers. The
// artifact is read from disk on every Load call, so a retrained model is
// picked up without a restart.
type Loader struct {
	modelPath    string
	metadataPath string
}

func NewLoader(modelPath, metadataPath string) *Loader {
	return &Loader{
		modelPath:    modelPath,
		metadataPath: metadataPath,
	}
}

// Load reads the classifier artifact from disk.
func (l *Loader) Load() (*Classifier, error) {
	return LoadArtifact(l.modelPath)
}

// Metadata reads the artifact description from disk.
func (l *Loader) Metadata() (Metadata, error) {
	return LoadMetadata(l.metadataPath)
}

// ModelPath returns the configured artifact location.
func (l *Loader) ModelPath() string {
	return l.modelPath
}
