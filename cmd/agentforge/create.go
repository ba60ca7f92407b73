package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/config"
	"github.com/mark3labs/agentforge/internal/logger"
	"github.com/mark3labs/agentforge/internal/tui/agentwizard"
	"github.com/spf13/cobra"
)

var createFlags struct {
	name         string
	description  string
	instructions string
	createDelay  string
	meetingDelay string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Run the agent creation wizard",
	Long: `Run the agent creation wizard.

Fill in the agent name, description and instructions, attach knowledge base
files, then create the agent and generate a meeting link for it.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./agentforge.yml
Global config: ~/.config/agentforge/agentforge.yml`,
	RunE: runCreate,
}

func init() {
	addCreateFlags(createCmd)
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createFlags.name, "name", "n", "", "Prefill the agent name")
	cmd.Flags().StringVarP(&createFlags.description, "description", "d", "", "Prefill the agent description")
	cmd.Flags().StringVarP(&createFlags.instructions, "instructions", "i", "", "Prefill the agent instructions")
	cmd.Flags().StringVar(&createFlags.createDelay, "create-delay", "", "Simulated agent creation delay (e.g. 2s)")
	cmd.Flags().StringVar(&createFlags.meetingDelay, "meeting-delay", "", "Simulated meeting link delay (e.g. 1.5s)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("create-delay") {
		cfg.CreateDelay = createFlags.createDelay
	}
	if cmd.Flags().Changed("meeting-delay") {
		cfg.MeetingDelay = createFlags.meetingDelay
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	res, err := agentwizard.Run(cfg, agentwizard.Prefill{
		Name:         createFlags.name,
		Description:  createFlags.description,
		Instructions: createFlags.instructions,
	})
	if errors.Is(err, agentwizard.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	printSummary(cmd, res)
	return nil
}

func printSummary(cmd *cobra.Command, res *agentwizard.Result) {
	out := cmd.OutOrStdout()
	switch res.Stage {
	case agent.StageMeetingReady:
		fmt.Fprintf(out, "Agent %q is ready.\nMeeting link: %s\n", res.AgentName, res.MeetingLink)
	case agent.StageCreated:
		fmt.Fprintf(out, "Agent %q created (%d files). No meeting link generated.\n", res.AgentName, res.Files)
	}
}
