package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/surquest/icon-picker/cmd/iconpick"
)

func main() {
	rootCmd := iconpick.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printfln("Error: %v", err)
		os.Exit(1)
	}
}
