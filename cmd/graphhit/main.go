package main

import (
	"github.com/oliverbestmann/bykegraph/internal/cli"
)

func main() {
	cli.Execute()
}
