package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resolveSkillCmd = &cobra.Command{
	Use:   "resolve-skill [term]",
	Short: "Normalize a skill term against the catalog",
	Long:  "Resolves a raw skill term through exact, alias, and fuzzy matching, printing the canonical skill entry when one is found.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolveSkill,
}

func init() {
	rootCmd.AddCommand(resolveSkillCmd)
}

func runResolveSkill(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	term := args[0]
	response := map[string]any{
		"term":       term,
		"normalized": env.resolver.Normalize(term),
	}
	if id, ok := env.resolver.ResolveID(term); ok {
		response["skill_id"] = id
		if skill, found := env.resolver.Skill(id); found {
			response["skill"] = skill
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %q did not resolve to a known skill\n", term)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}
