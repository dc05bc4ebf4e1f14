// Package scanlog appends scan results to daily jsonl files and compresses
// old ones, so trend history survives without a database.
package scanlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"trendfin/internal/types"
)

var mu sync.Mutex

// Entry is one scan run.
type Entry struct {
	Time      string              `json:"time"`
	Documents int                 `json:"documents"`
	Trends    []types.TickerTrend `json:"trends"`
}

func logDir() string {
	if v := os.Getenv("TRENDFIN_LOG_DIR"); v != "" {
		return v
	}
	return "scans"
}

func dailyFilepath(t time.Time) string {
	d := t.UTC().Format("2006-01-02")
	return filepath.Join(logDir(), d+".jsonl")
}

// Append writes one entry to today's scan log.
func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UTC()
	e.Time = now.Format("2006-01-02 15:04:05")

	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips scan logs older than retentionDays. Zero or negative
// retention disables compression.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".jsonl" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		if _, e2 := os.Stat(gz); e2 == nil {
			// already compressed on a previous run
			return os.Remove(p)
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		_, cpErr := io.Copy(gw, in)
		_ = gw.Close()
		_ = out.Close()
		if cpErr != nil {
			_ = os.Remove(gz)
			return nil
		}
		return os.Remove(p)
	})
}
