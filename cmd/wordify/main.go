package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/riverfjs/wordify-go"
)

const usage = `usage: wordify <command> [flags]

commands:
  convert   convert an HTML, Markdown or JSON tree file to .docx
  serve     run the upload endpoint
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordify: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	wordify.SetLogger(logger)

	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:], logger)
	case "serve":
		err = runServe(os.Args[2:], logger)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("wordify failed", zap.String("command", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}
