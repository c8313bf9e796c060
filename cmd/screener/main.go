package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"screener/internal/config"
	"screener/internal/export"
	"screener/internal/extract"
	"screener/internal/keywords"
	"screener/internal/present"
	"screener/internal/ranker"
	"screener/internal/service"
	"screener/internal/summarizer"
	"screener/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		jdPath  string
		jdText  string
		csvPath string
		plain   bool
		verbose bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/screener/config.yaml if not provided)")
	flag.StringVar(&jdPath, "jd", "", "Path to a job description text file")
	flag.StringVar(&jdText, "jd-text", "", "Job description text")
	flag.StringVar(&csvPath, "csv", "", "Write the ranking to this CSV file")
	flag.BoolVar(&plain, "plain", false, "Print a table instead of starting the TUI")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 || (jdPath == "" && jdText == "") {
		fmt.Println("Usage: screener [--config=config.yaml] (--jd=job.txt | --jd-text=\"...\") resume.pdf [resume2.pdf ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	jd := jdText
	if jdPath != "" {
		data, err := os.ReadFile(jdPath)
		if err != nil {
			log.Fatalf("failed to read job description: %v", err)
		}
		jd = string(data)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var opts []service.Option
	if cfg.Summary.Sentences > 0 {
		opts = append(opts, service.WithSummarizer(summarizer.NewFrequencySummarizer()))
	}
	svc := service.NewScreeningService(
		extract.NewRegistry(),
		keywords.NewExtractor(),
		ranker.New(cfg.RemoveStopWords()),
		service.Options{
			KeywordCount:     cfg.Keywords.Count,
			PreviewChars:     cfg.Preview.Chars,
			SummarySentences: cfg.Summary.Sentences,
			Extract:          extract.Options{Workers: cfg.Extractor.Workers, FailFast: cfg.Extractor.FailFast},
			Logger:           logger,
		},
		opts...,
	)
	docs, err := svc.LoadDocuments(inputs)
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}
	report, err := svc.Screen(context.Background(), jd, docs)
	if err != nil {
		log.Fatalf("screening failed: %v", err)
	}

	if csvPath != "" {
		if err := export.SaveCSV(csvPath, report.Entries); err != nil {
			log.Fatalf("export failed: %v", err)
		}
	}

	if plain {
		if err := present.NewTable(os.Stdout).Present(report); err != nil {
			log.Fatal(err)
		}
		return
	}
	m := tui.New(report, cfg.Export.Path, cfg.Preview.Chars)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
