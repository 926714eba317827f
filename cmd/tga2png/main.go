// Command tga2png converts TGA images to PNG, WebP, BMP or TIFF,
// either one file at a time or across whole directories.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gracejinsotrue/tga/internal/batch"
	"github.com/gracejinsotrue/tga/internal/config"
	"github.com/gracejinsotrue/tga/internal/convert"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: tga2png [options] <file.tga | directory>

Examples:
  tga2png output.tga                 convert a single file
  tga2png output.tga -o myimage.png  convert with a custom output name
  tga2png ./images/                  convert all TGA files in a directory
  tga2png ./project/ -r              convert recursively
  tga2png ./images/ -format webp     convert to WebP instead of PNG

Options:
`)
	flag.PrintDefaults()
}

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	output := flag.String("o", "", "Output file (single file) or directory (batch)")
	format := flag.String("format", "", "Output format: png, webp, bmp, tiff (default: png)")
	recursive := flag.Bool("r", false, "Recursively convert all TGA files in a directory")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	pure := flag.Bool("pure", false, "Skip the external decoder and use only the built-in engine")
	manifest := flag.Bool("manifest", false, "Write manifest.json next to the batch output")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Format:    *format,
		Workers:   *workers,
		Recursive: *recursive,
		Manifest:  *manifest,
		Pure:      *pure,
		Verbose:   *verbose,
	})

	outFormat, err := convert.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s does not exist\n", input)
		os.Exit(1)
	}

	if !info.IsDir() {
		convertOne(input, *output, outFormat, cfg.Pure)
		return
	}

	// -o means the output directory in batch mode.
	if *output != "" {
		cfg.OutputDir = *output
	}
	convertBatch(input, outFormat, cfg)
}

func convertOne(input, output string, format convert.Format, pure bool) {
	conv := convert.New(format, pure)
	if output == "" {
		output = conv.OutputPath(input)
	}

	if err := conv.File(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", input, err)
		os.Exit(1)
	}
	fmt.Printf("Converted: %s -> %s\n", input, output)
}

func convertBatch(root string, format convert.Format, cfg config.Config) {
	files, err := batch.Scan(root, cfg.Recursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", root, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No TGA files found in %s\n", root)
		os.Exit(1)
	}

	fmt.Printf("Found %d TGA file(s)\n", len(files))
	fmt.Printf("Format: %s, Workers: %d\n", format, cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		Root:      root,
		OutputDir: cfg.OutputDir,
		Format:    format,
		Pure:      cfg.Pure,
		Workers:   cfg.Workers,
		Verbose:   cfg.Verbose,
	}, files)
	elapsed := time.Since(start)

	success, failed := 0, 0
	var failures []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			failures = append(failures, r)
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Converted: %d/%d\n", success, len(files))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, f := range failures[:limit] {
			fmt.Printf("  %s: %s\n", f.Source, f.Error)
		}
	}

	if cfg.Manifest {
		dir := cfg.OutputDir
		if dir == "" {
			dir = root
		}
		manifestPath := filepath.Join(dir, "manifest.json")
		os.MkdirAll(dir, 0755)
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
