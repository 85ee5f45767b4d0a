// Package seed loads a YAML dataset of authors, magazines and articles into a registry.
//
// A dataset lists entities in construction order. Articles refer to their
// author and magazine by key:
//
//	authors:
//	  - key: carry
//	    name: Carry Bradshaw
//	magazines:
//	  - key: vogue
//	    name: Vogue
//	    category: Fashion
//	articles:
//	  - author: carry
//	    magazine: vogue
//	    title: How to wear a tutu with style
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DatasetYAML represents the YAML file structure.
type DatasetYAML struct {
	Authors   []AuthorYAML   `yaml:"authors"`
	Magazines []MagazineYAML `yaml:"magazines"`
	Articles  []ArticleYAML  `yaml:"articles"`
}

// AuthorYAML represents an author entry.
type AuthorYAML struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// MagazineYAML represents a magazine entry.
type MagazineYAML struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleYAML represents an article entry.
type ArticleYAML struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// ReadFile parses a dataset from a YAML file.
func ReadFile(path string) (*DatasetYAML, error) {
	// #nosec G304 -- path is provided by the operator via CLI flag or config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse parses a dataset from YAML bytes. Unknown fields are rejected.
func Parse(data []byte) (*DatasetYAML, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ds DatasetYAML
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &ds, nil
}
