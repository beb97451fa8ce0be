// Command formalpathctl is a thin example wiring of the query façade to the
// Dot and grammar text readers: point it at a graph and a grammar file and
// it prints the (start, final) vertex pairs the chosen engine reports. It
// is example wiring, not a supported CLI product: exit codes and flag
// surface are not part of any stability contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/formalpath/dot"
	"github.com/katalvlaran/formalpath/grammar"
	"github.com/katalvlaran/formalpath/query"
	"github.com/projectdiscovery/gologger"
)

func main() {
	graphPath := flag.String("graph", "", "path to a Dot graph file")
	grammarPath := flag.String("grammar", "", "path to a grammar text file")
	engineName := flag.String("engine", "hellings", "hellings | matrix | tensor")
	startVar := flag.String("start-var", "S", "CFG start variable to project")
	flag.Parse()

	if *graphPath == "" || *grammarPath == "" {
		gologger.Fatal().Msg("both -graph and -grammar are required")
	}

	gf, err := os.Open(*graphPath)
	if err != nil {
		gologger.Fatal().Msgf("opening graph file: %v", err)
	}
	defer gf.Close()

	g, err := dot.ReadGraph(gf)
	if err != nil {
		gologger.Fatal().Msgf("reading graph: %v", err)
	}

	cfgBytes, err := os.ReadFile(*grammarPath)
	if err != nil {
		gologger.Fatal().Msgf("reading grammar file: %v", err)
	}
	cfg, err := grammar.ParseCFG(string(cfgBytes))
	if err != nil {
		gologger.Fatal().Msgf("parsing grammar: %v", err)
	}

	engine, err := resolveEngine(*engineName)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	gologger.Info().Msgf("running %s on %d vertices", *engineName, len(g.Vertices()))
	pairs, err := query.RunCFPQ(g, cfg, engine, query.WithStartVariable(*startVar))
	if err != nil {
		gologger.Fatal().Msgf("query failed: %v", err)
	}

	printPairs(pairs)
}

func resolveEngine(name string) (query.Engine, error) {
	switch name {
	case "hellings":
		return query.Hellings, nil
	case "matrix":
		return query.MatrixCFPQ, nil
	case "tensor":
		return query.TensorCFPQ, nil
	default:
		return 0, fmt.Errorf("unknown engine %q", name)
	}
}

func printPairs(pairs map[query.Pair]struct{}) {
	out := make([]query.Pair, 0, len(pairs))
	for p := range pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})
	for _, p := range out {
		fmt.Printf("%s\t%s\n", p.From, p.To)
	}
}
