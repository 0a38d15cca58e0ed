package main

import (
	"os"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
