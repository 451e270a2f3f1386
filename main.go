package main

import (
	"os"

	"github.com/Xunop/e-verse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
