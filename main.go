package main

import (
	"context"
	"os"

	"github.com/llehouerou/tplay/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
