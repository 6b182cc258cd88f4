package main

import (
	"os"

	"github.com/isich/stripblock/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
