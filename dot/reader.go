package dot

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/formalpath/core"
)

// spuriousNode is the stray node identifier some Dot writers emit; readers
// must silently ignore it.
const spuriousNode = `\n`

var (
	edgeLine = regexp.MustCompile(`^"?([^"\s\[]+)"?\s*->\s*"?([^"\s\[;]+)"?\s*(?:\[\s*label\s*=\s*"?([^"\];]*)"?\s*\])?\s*;?$`)
	nodeLine = regexp.MustCompile(`^"?([^"\s\[;]+)"?\s*;?$`)
)

// ReadGraph reads a directed labelled multigraph from Dot text: one edge or
// bare-node statement per line, an optional `label="..."` edge attribute,
// and the `digraph NAME { ... }` wrapper. This is a minimal reader for the
// one concrete syntax this module emits/consumes as its canonical I/O
// format, not a general Dot grammar.
// Complexity: O(lines).
func ReadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || line == "{" || line == "}" {
			continue
		}
		if strings.HasPrefix(line, "digraph") || strings.HasPrefix(line, "graph") {
			continue
		}

		if m := edgeLine.FindStringSubmatch(line); m != nil {
			from, to, label := m[1], m[2], m[3]
			if from == spuriousNode || to == spuriousNode {
				continue
			}
			if _, err := g.AddLabelledEdge(from, to, label); err != nil {
				return nil, err
			}

			continue
		}

		if m := nodeLine.FindStringSubmatch(line); m != nil {
			if m[1] == spuriousNode {
				continue
			}
			if err := g.AddVertex(m[1]); err != nil {
				return nil, err
			}

			continue
		}

		return nil, ErrMalformedEdge
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
