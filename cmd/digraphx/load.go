package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/digraphx/digraph"
)

// edgeSpec is one YAML edge entry. The weight field feeds the negcycle
// subcommand; cost and time feed the ratio subcommand.
type edgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
	Cost   float64 `yaml:"cost"`
	Time   float64 `yaml:"time"`
}

func (e edgeSpec) weight() float64 { return e.Weight }
func (e edgeSpec) cost() float64   { return e.Cost }
func (e edgeSpec) time() float64   { return e.Time }

// graphFile is the YAML document root.
type graphFile struct {
	Edges []edgeSpec `yaml:"edges"`
}

// loadGraph reads a YAML edge list into a Map view, giving every node an
// adjacency row (targets included) so the view is closed, then validates it.
// Duplicate (from, to) pairs are rejected: the view shows at most one edge
// per ordered pair, and silently dropping one would skew results.
func loadGraph(path string) (digraph.Map[string, edgeSpec], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var gf graphFile
	if err = yaml.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(gf.Edges) == 0 {
		return nil, fmt.Errorf("%s: no edges", path)
	}

	g := digraph.Map[string, edgeSpec]{}
	for _, e := range gf.Edges {
		if _, ok := g[e.From]; !ok {
			g[e.From] = map[string]edgeSpec{}
		}
		if _, dup := g[e.From][e.To]; dup {
			return nil, fmt.Errorf("%s: duplicate edge %s→%s (flatten multigraphs first)", path, e.From, e.To)
		}
		g[e.From][e.To] = e
		if _, ok := g[e.To]; !ok {
			g[e.To] = map[string]edgeSpec{}
		}
	}

	if err = digraph.Validate[string, edgeSpec](g); err != nil {
		return nil, err
	}

	return g, nil
}
