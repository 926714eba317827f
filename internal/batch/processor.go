// Package batch converts whole trees of TGA files using a worker pool.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/gracejinsotrue/tga/internal/convert"
)

// Config holds the shared settings for a batch run.
type Config struct {
	// Root is the directory the input files were scanned from; it is
	// used to keep their relative layout under OutputDir.
	Root string
	// OutputDir receives the converted files. When empty, each output
	// is written next to its source.
	OutputDir string
	Format    convert.Format
	// Pure disables the external fast-path decoder.
	Pure    bool
	Workers int
	Verbose bool
}

// Result holds the outcome of converting one file. A failed file never
// aborts the batch; its Result carries the error instead.
type Result struct {
	Source  string `json:"source"`
	Output  string `json:"output,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Scan returns the TGA files under root, sorted by WalkDir order. A
// non-recursive scan only looks at the top level.
func Scan(root string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isTGA(path) {
				files = append(files, path)
			}
			return nil
		})
		return files, errors.Wrapf(err, "batch: scan %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: scan %s", root)
	}
	for _, e := range entries {
		if !e.IsDir() && isTGA(e.Name()) {
			files = append(files, filepath.Join(root, e.Name()))
		}
	}
	return files, nil
}

func isTGA(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tga")
}

// Run converts all files using a worker pool and returns one Result
// per input, in input order.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	conv := convert.New(cfg.Format, cfg.Pure)

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, conv, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, conv *convert.Converter, src string) Result {
	dst := outputPath(cfg, conv, src)
	if err := conv.File(src, dst); err != nil {
		return Result{Source: src, Error: err.Error()}
	}
	if cfg.Verbose {
		fmt.Printf("  %s -> %s\n", src, dst)
	}
	return Result{Source: src, Output: dst, Success: true}
}

// outputPath places the converted file either next to its source or
// under OutputDir, preserving the layout relative to the scan root.
func outputPath(cfg Config, conv *convert.Converter, src string) string {
	if cfg.OutputDir == "" {
		return conv.OutputPath(src)
	}

	rel := filepath.Base(src)
	if cfg.Root != "" {
		if r, err := filepath.Rel(cfg.Root, src); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}
	return conv.OutputPath(filepath.Join(cfg.OutputDir, rel))
}
