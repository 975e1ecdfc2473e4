package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"go.uber.org/zap"

	"github.com/riverfjs/wordify-go"
)

func runConvert(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("wordify-convert", flag.ExitOnError)
	in := fs.String("in", "", "Path to the source document")
	out := fs.String("out", "", "Path of the .docx to write (defaults to the input name with .docx)")
	format := fs.String("format", "", "Source format: html, markdown or json (detected from the extension when empty)")
	title := fs.String("title", "", "Document title, overrides any title in the source")
	asJSON := fs.Bool("json", false, "Write the document model as JSON instead of .docx")
	dump := fs.Bool("dump", false, "Pretty-print the document model to stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	src, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	sourceFormat := wordify.DetectSourceFormat(*in, "")
	if *format != "" {
		if sourceFormat, err = wordify.ParseSourceFormat(*format); err != nil {
			return err
		}
	}

	if *dump || *asJSON {
		doc, _, err := wordify.ParseAndConvert(src, sourceFormat)
		if err != nil {
			return err
		}
		if *dump {
			_, _ = pp.Println(doc)
		}
		if *asJSON {
			return writeJSON(outputPath(*in, *out, ".json"), doc)
		}
		return nil
	}

	var buf bytes.Buffer
	result, err := wordify.Wordify(context.Background(), bytes.NewReader(src), &buf,
		wordify.WithSourceFormat(sourceFormat),
		wordify.WithTitle(*title),
	)
	if err != nil {
		return err
	}

	target := outputPath(*in, *out, ".docx")
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	logger.Info("document written",
		zap.String("path", target),
		zap.Stringer("format", result.Format),
		zap.Int("blocks", result.Blocks),
		zap.Int("words", result.Words),
		zap.String("size", humanize.Bytes(uint64(buf.Len()))),
	)
	return nil
}

func outputPath(in, out, ext string) string {
	if out != "" {
		return out
	}
	if i := strings.LastIndex(in, "."); i > strings.LastIndex(in, string(os.PathSeparator)) {
		return in[:i] + ext
	}
	return in + ext
}

func writeJSON(path string, doc wordify.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
