package main

import (
	"context"
	"fmt"
	"os"

	"monges_backend/internals/commands"
	"monges_backend/internals/configs"
)

func main() {
	cfg := configs.LoadEnv()

	root := commands.NewRootCommand(cfg)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
