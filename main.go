// mindcare - a terminal companion for the MindCare support service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/cli"
	"github.com/mindcare/mindcare-tui/internal/config"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/storage"
	"github.com/mindcare/mindcare-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	// Stdout belongs to the interface; background errors go to a log file
	// when debugging is requested.
	if os.Getenv("MINDCARE_DEBUG") != "" {
		if dir, err := config.ConfigDir(); err == nil {
			if f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "debug"); err == nil {
				defer f.Close()
			}
		}
	}

	clientCfg := api.DefaultConfig()
	clientCfg.BaseURL = cfg.BaseURL()
	clientCfg.Timeout = time.Duration(cfg.API.TimeoutSecs) * time.Second
	if args.APIURL != "" {
		clientCfg.BaseURL = strings.TrimRight(args.APIURL, "/")
	}
	client := api.NewClientWithConfig(clientCfg)

	sessions, err := session.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Without a transcript store the export command is disabled; the rest
	// of the app works normally.
	transcripts, err := storage.NewTranscriptStore()
	if err != nil {
		transcripts = nil
	}

	program := tea.NewProgram(
		app.New(client, sessions, transcripts),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
