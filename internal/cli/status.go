// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend status command handler for the mindcare CLI.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mindcare/mindcare-tui/internal/config"
)

// HandleStatus probes the backend health endpoint and prints the result.
// Exits non-zero when the backend is unreachable.
func HandleStatus(args Args) {
	cfg := config.Global()
	client := newClient(cfg, args)

	health, err := client.CheckHealth(context.Background())
	if err != nil {
		fmt.Println(errorStyle.Render("Servidor MindCare: sin conexión"))
		fmt.Println(infoStyle.Render("  " + client.BaseURL()))
		fmt.Println(infoStyle.Render("  " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(welcomeStyle.Render("Servidor MindCare: " + health.Status))
	fmt.Println(infoStyle.Render("  URL:     " + client.BaseURL()))
	fmt.Println(infoStyle.Render("  Ollama:  " + health.Ollama))
	fmt.Println(infoStyle.Render("  Versión: " + health.Version))
}
