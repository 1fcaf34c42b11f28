package main

import (
	"fmt"
	"os"

	"github.com/rickymagner/ast-calc/cmd/astcalc/commands"
)

func main() {
	// Execute the root command
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
