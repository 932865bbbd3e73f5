package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nexonbooks/docintake/gen/ent"
	"github.com/nexonbooks/docintake/internal/ai"
	"github.com/nexonbooks/docintake/internal/classify"
	"github.com/nexonbooks/docintake/internal/common"
	"github.com/nexonbooks/docintake/internal/export"
	"github.com/nexonbooks/docintake/internal/extract"
	"github.com/nexonbooks/docintake/internal/ingest"
	"github.com/nexonbooks/docintake/internal/pipeline"
	repo "github.com/nexonbooks/docintake/internal/repository"
	"github.com/nexonbooks/docintake/internal/resolver"
	"github.com/nexonbooks/docintake/internal/textsource"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory to process documents from (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workspace = flag.String("workspace", "Local Batch", "workspace name")
		fromStr   = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr     = flag.String("to", "", "export to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		entc = client
	}

	workspacesRepo := repo.NewWorkspaceRepository(entc, logger)
	customersRepo := repo.NewCustomerRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	reviewsRepo := repo.NewReviewRepository(entc, logger)

	ws, err := workspacesRepo.GetOrCreateByName(ctx, *workspace)
	if err != nil {
		logger.Error("failed to get or create workspace", "error", err)
		os.Exit(1)
	}
	logger.Info("using workspace", "id", ws.ID, "name", ws.Name)

	proc := pipeline.NewProcessor(logger)
	proc.Text = textsource.NewSource(textsource.Config{
		Pdftotext:     cfg.Text.Pdftotext,
		Pdftoppm:      cfg.Text.Pdftoppm,
		Tesseract:     cfg.Text.Tesseract,
		TesseractLang: cfg.Text.TesseractLang,
		DPI:           cfg.Text.OCRDPI,
		MaxPages:      cfg.Text.MaxPages,
	}, logger)
	proc.Classifier = classify.NewClassifier(classify.DefaultKeywordTable(), cfg.Intake.TextScanLimit, logger)
	proc.Extractor = extract.NewExtractor(extract.DefaultVendorOverrides(), cfg.Intake.TextScanLimit, time.Now, logger)
	proc.Resolver = resolver.NewCounterpartyResolver(logger)
	proc.Duplicates = resolver.NewDuplicateDetector(logger)
	proc.Customers = customersRepo
	proc.Invoices = invoicesRepo
	proc.Reviews = reviewsRepo
	proc.Threshold = cfg.Intake.ConfidenceThreshold

	// nil client (no API key) must stay a nil interface
	if aiClient := ai.NewClient(cfg.AI, logger); aiClient != nil {
		proc.AI = aiClient
		logger.Info("AI extraction enabled", "model", cfg.AI.Model)
	} else {
		logger.Warn("OPENAI_API_KEY not configured, running heuristics only")
	}

	files, stats, err := ingest.ScanDirectory(*dir, nil, true)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory scanned",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"skipped", stats.Skipped,
		"failed", stats.Failed)

	result := proc.ProcessBatch(ctx, ws.ID, files)

	exportService := export.NewService(invoicesRepo, customersRepo, logger)
	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx, ws.ID, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch intake complete",
		"files", len(files),
		"created", len(result.Created),
		"duplicates", len(result.Duplicates),
		"manual_review", len(result.ManualReview),
		"errors", len(result.Errors),
		"output_file", *out)

	fmt.Printf("Batch intake complete!\n")
	fmt.Printf("- Files processed: %d\n", len(files))
	fmt.Printf("- Invoices created: %d\n", len(result.Created))
	fmt.Printf("- Duplicates flagged: %d\n", len(result.Duplicates))
	fmt.Printf("- Queued for review: %d\n", len(result.ManualReview))
	fmt.Printf("- Errors: %d\n", len(result.Errors))
	fmt.Printf("- Output: %s\n", *out)
}
