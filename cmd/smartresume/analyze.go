package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/michal/smartresume/internal/analyzer"
	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/criteria"
	"github.com/michal/smartresume/internal/extract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Score resume files against a target role",
	Long:  "Extracts text from PDF, DOC, or DOCX resume files and scores each against the target role's keyword criteria. Multiple files are analyzed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeTargetRole   string
	analyzeCriteriaFile string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTargetRole, "role", "r", "", "Target role id, e.g. full-stack-developer (required)")
	analyzeCmd.Flags().StringVarP(&analyzeCriteriaFile, "criteria", "c", config.DefaultCriteriaFile, "Path to the analysis criteria file")
	_ = analyzeCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(analyzeCmd)
}

// fileReport is one analyzed file's output, serialized to stdout as JSON.
type fileReport struct {
	File         string `json:"file"`
	TargetRole   string `json:"targetRole"`
	ContentScore int    `json:"contentScore"`
	Analysis     any    `json:"analysis"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	store, err := criteria.LoadStore(analyzeCriteriaFile)
	if err != nil {
		return err
	}
	roleCriteria := store.ForRole(analyzeTargetRole)

	var (
		mu      sync.Mutex
		reports []fileReport
	)

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)
	for _, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			text, err := extract.Text(mediaTypeForFile(path), data)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}

			report := fileReport{
				File:         path,
				TargetRole:   analyzeTargetRole,
				ContentScore: analyzer.ContentScore(text),
				Analysis:     analyzer.Analyze(text, roleCriteria, analyzeTargetRole),
			}

			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].File < reports[j].File })

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// mediaTypeForFile maps a file extension to the media type the extractor
// dispatches on.
func mediaTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MediaTypePDF
	case ".docx":
		return extract.MediaTypeDocx
	case ".doc":
		return extract.MediaTypeDoc
	default:
		return ""
	}
}
