package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for matching, ranking, and skill resolution.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.cleanup()

	port := servePort
	if env.cfg.Port != 0 && !cmd.Flags().Changed("port") {
		port = env.cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:         port,
		Orchestrator: env.orchestrator,
		Resolver:     env.resolver,
		Provider:     env.provider,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
