// Package main provides the tier-ingestion command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"pharmadir/internal/config"
	"pharmadir/internal/logger"
	"pharmadir/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "configs/processor.yaml", "Path to YAML configuration file")
	inputFile := flag.String("input", "", "Raw tier CSV (overrides input.tier_file from config)")
	dryRun := flag.Bool("dry-run", false, "Run the full pipeline but skip the final corpus write")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	fmt.Printf("🏥 Pharmacy Tier Processor\n\n")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *inputFile != "" {
		cfg.Processor.Input.TierFile = *inputFile
	}

	log := logger.NewLogger(cfg.Processor.Logging.Level)

	fmt.Printf("📖 Tier file:   %s\n", cfg.Processor.Input.TierFile)
	fmt.Printf("📂 Corpus file: %s\n", cfg.Processor.Input.CorpusFile)

	if *dryRun {
		fmt.Println("👀 Dry-run mode (corpus will not be written)")
	}

	fmt.Println()

	summary, err := pipeline.New(cfg, log).Run(*dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📊 Summary:")
	fmt.Print(summary.Render())

	if *dryRun {
		fmt.Println("\n💡 Run without -dry-run to write the corpus.")
	} else {
		fmt.Printf("\n✅ Corpus saved to: %s\n", cfg.Processor.Input.CorpusFile)
	}
}

func printUsage() {
	fmt.Println("Usage: ./bin/processor [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/processor -config configs/processor.yaml")
	fmt.Println("  ./bin/processor -input raw-results-tier4.csv -dry-run")
}
