package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lexigraph/backend/internal/util"
	"github.com/lexigraph/backend/pkg/logger"
	"github.com/lexigraph/backend/pkg/logger/console"
	"github.com/lexigraph/backend/pkg/textproc"
)

func main() {
	minFrequency := flag.Int("min-freq", 1, "minimum word count for graph nodes")
	parallelReads := flag.Int("parallel", 4, "maximum concurrent file reads")
	perLine := flag.Bool("per-line", false, "treat each non-empty line as its own generation")
	output := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	util.LoadEnv()
	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Prefix: "analyze",
	})
	logger.Init(consoleLogger)

	files := flag.Args()
	if len(files) == 0 {
		logger.Fatal("No input files given")
	}

	generations, err := readGenerations(context.Background(), files, *parallelReads)
	if err != nil {
		logger.Fatal("Failed to read input files", "err", err)
	}
	if *perLine {
		generations = splitPerLine(generations)
	}

	// Reads happen in parallel; the kernel itself stays single-threaded.
	processor := textproc.NewProcessor(textproc.NewProcessorParams{})
	result := processor.IngestBatch(generations)
	logger.Info(
		"Batch ingested",
		"generations", result.TotalGenerations,
		"unique_words", len(result.Words),
		"processing_ms", result.ProcessingTime,
	)

	graph := processor.BuildGraph(*minFrequency)
	logger.Info("Graph built", "nodes", len(graph.Nodes), "links", len(graph.Links))

	encoded, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode graph", "err", err)
	}
	encoded = append(encoded, '\n')

	if *output == "" {
		if _, err := os.Stdout.Write(encoded); err != nil {
			logger.Fatal("Failed to write graph", "err", err)
		}
		return
	}

	if err := os.WriteFile(*output, encoded, 0o644); err != nil {
		logger.Fatal("Failed to write graph", "path", *output, "err", err)
	}
	logger.Info("Graph written", "path", *output)
}

// readGenerations loads each file as one generation, preserving the argument
// order regardless of which read finishes first.
func readGenerations(ctx context.Context, files []string, parallel int) ([]string, error) {
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)

	generations := make([]string, len(files))
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			generations[i] = util.SanitizeText(string(data))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return generations, nil
}

// splitPerLine turns every non-empty line of each file into its own
// generation, keeping file order and line order.
func splitPerLine(generations []string) []string {
	var split []string
	for _, gen := range generations {
		for _, line := range strings.Split(gen, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				split = append(split, line)
			}
		}
	}
	return split
}
