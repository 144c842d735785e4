package main

import (
	"context"
	"fmt"
	"os"

	"earl/internal/cli"
	"earl/internal/config"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(config.EnvFromList(os.Environ()), home)
	os.Exit(cli.Execute(context.Background(), app, os.Args[1:]))
}
