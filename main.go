package main

import (
	"os"

	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
