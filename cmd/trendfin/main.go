package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trendfin/internal/logger"
	"trendfin/internal/scan"
	"trendfin/internal/scanlog"
	"trendfin/internal/store"
	"trendfin/internal/trace"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	text := flag.String("text", "", "analyze a single text and exit ('-' reads stdin)")
	flag.Parse()

	must(initializeSystem())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	cfg, err := store.LoadConfig(*configPath)
	must(err)

	lexicon, err := buildLexicon(ctx, cfg)
	must(err)
	logger.Info(ctx, "Lexicon ready", "symbols", lexicon.Len())

	svc, err := buildService(ctx, cfg, lexicon)
	must(err)

	if *text != "" {
		must(runOneShot(svc, *text))
		shutdown()
		return
	}

	result, err := svc.Run(ctx)
	must(err)

	if err := scanlog.Append(scanlog.Entry{
		Documents: result.Documents,
		Trends:    result.Trends,
	}); err != nil {
		logger.Warn(ctx, "Failed to append scan log", "error", err)
	}
	compressOldLogs(ctx)

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))

	shutdown()
}

// runOneShot analyzes a single text from the flag or stdin and prints the
// extraction report.
func runOneShot(svc *scan.Service, text string) error {
	if text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(b)
	}

	report, err := svc.AnalyzeText(text)
	if err != nil {
		return err
	}
	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
	return nil
}

// compressOldLogs compresses old scan logs if retention is configured
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("TRENDFIN_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := scanlog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old scan logs", "error", err)
		}
	}
}

func shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := trace.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Tracer shutdown: %v\n", err)
	}
}
