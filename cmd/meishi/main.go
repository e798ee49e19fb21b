package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "meishi",
		Short:         "Digital business card API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(cleanupCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
