package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills [text]",
	Short: "Extract known skills from free text",
	Long:  "Scans free text (from an argument, --file, or stdin) for skill mentions and prints the extraction with matched and unmatched terms.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtractSkills,
}

var extractSkillsFile string

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsFile, "file", "f", "", "Path to a text file to scan")
	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, args []string) error {
	text, err := extractionInput(args)
	if err != nil {
		return err
	}

	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	extraction := env.resolver.ExtractSkillsFromText(text)

	if env.cfg.Verbose {
		env.printer.PrintExtraction(&extraction)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(extraction)
}

// extractionInput reads the text to scan from the argument, the --file flag,
// or stdin, in that order.
func extractionInput(args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if extractSkillsFile != "" {
		data, err := os.ReadFile(extractSkillsFile)
		if err != nil {
			return "", fmt.Errorf("failed to read text file %s: %w", extractSkillsFile, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no input text: pass an argument, --file, or pipe text on stdin")
	}
	return string(data), nil
}
