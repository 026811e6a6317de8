package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/render"
	"github.com/michal/smartresume/internal/template"
	"github.com/michal/smartresume/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to HTML",
	Long:  "Renders a ResumeRecord JSON file to a styled HTML fragment using the template named by its job role, for inspecting template output without running the server.",
	RunE:  runRender,
}

var (
	renderInputFile    string
	renderOutputFile   string
	renderTemplatesDir string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to ResumeRecord JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplatesDir, "templates", "t", config.DefaultTemplatesDir, "Path to the templates directory")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse resume file: %w", err)
	}

	renderer := render.NewRenderer(template.FileLoader{Dir: renderTemplatesDir})
	html := renderer.Render(&record)

	if renderOutputFile == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOutputFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOutputFile)
	return nil
}
