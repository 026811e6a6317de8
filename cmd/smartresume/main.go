// Package main provides the entry point for the SmartResume server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smartresume",
	Short: "SmartResume resume builder",
	Long:  "SmartResume builds styled HTML resumes from structured data, exports them as PDF, and scores uploaded resumes against per-role keyword criteria.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
