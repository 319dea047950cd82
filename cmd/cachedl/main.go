package main

import (
	"os"

	"github.com/iTrooz/cached-downloader/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
