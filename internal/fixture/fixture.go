// SPDX-License-Identifier: MIT

// Package fixture loads named graph fixtures from YAML and builds them into
// core graphs. The package ships a built-in set under testdata/ that tests
// across the module share.
package fixture

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wmgraph/core"
)

//go:embed testdata/graphs.yaml
var builtin embed.FS

// ErrUnknownFixture is returned by ByName for a name not in the set.
var ErrUnknownFixture = errors.New("fixture: unknown graph")

// Edge is one weighted edge in a fixture.
type Edge struct {
	U string  `yaml:"u"`
	V string  `yaml:"v"`
	W float64 `yaml:"w"`
}

// Expect holds the known analysis results of a fixture.
type Expect struct {
	Articulation []string `yaml:"articulation"`
	Components   int      `yaml:"components"`
	Order        int      `yaml:"order"`
	Size         int      `yaml:"size"`
}

// Graph is one named fixture.
type Graph struct {
	Name   string   `yaml:"name"`
	Loops  bool     `yaml:"loops"`
	Nodes  []string `yaml:"nodes"`
	Edges  []Edge   `yaml:"edges"`
	Expect Expect   `yaml:"expect"`
}

type document struct {
	Graphs []Graph `yaml:"graphs"`
}

// Load decodes a fixture document from r. Unknown keys are rejected.
func Load(r io.Reader) ([]Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	for i := range doc.Graphs {
		if doc.Graphs[i].Name == "" {
			return nil, fmt.Errorf("fixture: graph #%d has no name", i)
		}
	}

	return doc.Graphs, nil
}

// LoadFile reads and decodes the fixture document at path.
func LoadFile(path string) ([]Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Builtin returns the fixture set shipped with the package.
func Builtin() ([]Graph, error) {
	f, err := builtin.Open("testdata/graphs.yaml")
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// ByName returns the built-in fixture called name.
func ByName(name string) (Graph, error) {
	all, err := Builtin()
	if err != nil {
		return Graph{}, err
	}
	for _, g := range all {
		if g.Name == name {
			return g, nil
		}
	}

	return Graph{}, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
}

// Build creates a core graph from the fixture. Listed nodes are added
// first; names that appear only in edges are added on first use. Loops in
// the fixture enable core.WithLoops. Extra options are applied after.
func (fg Graph) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if fg.Loops {
		opts = append([]core.GraphOption{core.WithLoops()}, opts...)
	}
	g := core.NewGraph(opts...)

	ensure := func(name string) error {
		if g.ContainsNode(name) {
			return nil
		}
		_, err := g.AddNode(name)

		return err
	}
	for _, n := range fg.Nodes {
		if _, err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fg.Name, err)
		}
	}
	for _, e := range fg.Edges {
		if err := ensure(e.U); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fg.Name, err)
		}
		if err := ensure(e.V); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fg.Name, err)
		}
		if _, err := g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", fg.Name, err)
		}
	}

	return g, nil
}
