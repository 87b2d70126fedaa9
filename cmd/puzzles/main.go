package main

import (
	"github.com/mcoot/puzzlesuite-go/internal/cli"
)

func main() {
	cli.Execute()
}
