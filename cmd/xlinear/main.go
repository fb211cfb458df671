package main

import (
	"os"

	"github.com/benz9527/xlinear/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewBalanceCommand())
	rootCmd.AddCommand(cmd.NewPostfixCommand())
	rootCmd.AddCommand(cmd.NewPrefixCommand())
	rootCmd.AddCommand(cmd.NewEvalCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
