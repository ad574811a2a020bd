package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a message definition from a file path.
func Load(path string) (Document, error) {
	if path == "" {
		return Document{}, errors.New("document: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data)
}

// Read parses a message definition from a reader.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("document: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes a message definition. JSON is tried first, then YAML.
func Parse(data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, errors.New("document: definition is empty")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Document{}, errors.New("document: invalid JSON or YAML")
}
