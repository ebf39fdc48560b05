package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ghs/builder"
	"github.com/katalvlaran/ghs/core"
)

// Topology file errors.
var (
	ErrUnknownFormat = errors.New("config: unknown topology format")
	ErrEmptyTopology = errors.New("config: topology defines no nodes")
	ErrUnknownKeys   = errors.New("config: unknown topology keys")
)

// Topology formats, matching file extensions.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Topology is the on-disk form of a network:
//
//	name = "ring"
//	nodes = [1, 2, 3]
//
//	[[edges]]
//	from = 1
//	to = 2
//	weight = 0.5
//
// nodes may be omitted when every node has a link.
type Topology struct {
	Name  string        `toml:"name,omitempty" yaml:"name,omitempty"`
	Nodes []core.NodeID `toml:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges []core.Edge   `toml:"edges" yaml:"edges"`
}

// FormatOf maps a file name to a topology format by extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// LoadTopology reads a topology file and builds its graph.
func LoadTopology(path string) (*core.Graph, *Topology, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load topology: %w", err)
	}
	defer f.Close()

	t, err := DecodeTopology(f, format)
	if err != nil {
		return nil, nil, fmt.Errorf("load topology %s: %w", path, err)
	}
	g, err := t.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("load topology %s: %w", path, err)
	}

	return g, t, nil
}

// DecodeTopology parses r in the given format. Unknown keys are rejected.
func DecodeTopology(r io.Reader, format string) (*Topology, error) {
	var t Topology

	switch format {
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&t)
		if err != nil {
			return nil, err
		}
		if und := meta.Undecoded(); len(und) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKeys, und)
		}
		if !meta.IsDefined("edges") && !meta.IsDefined("nodes") {
			return nil, ErrEmptyTopology
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyTopology
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if len(t.Nodes) == 0 && len(t.Edges) == 0 {
		return nil, ErrEmptyTopology
	}

	return &t, nil
}

// Graph builds the validated graph: no loops, no duplicate links, finite
// weights.
func (t *Topology) Graph() (*core.Graph, error) {
	return builder.Build(builder.FromEdges(t.Edges, t.Nodes...))
}

// TopologyOf captures g, listing every node so isolated ones survive.
func TopologyOf(name string, g *core.Graph) *Topology {
	return &Topology{Name: name, Nodes: g.Nodes(), Edges: g.Edges()}
}

// Encode writes t in the given format. Edges are written sorted by
// endpoints for stable diffs.
func (t *Topology) Encode(w io.Writer, format string) error {
	out := *t
	out.Edges = append([]core.Edge(nil), t.Edges...)
	sort.Slice(out.Edges, func(i, j int) bool {
		a, b := out.Edges[i], out.Edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteTOML writes g as a TOML topology.
func WriteTOML(w io.Writer, name string, g *core.Graph) error {
	return TopologyOf(name, g).Encode(w, FormatTOML)
}
