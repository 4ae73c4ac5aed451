// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line surface of mindcare: argument
// parsing and the non-TUI handlers (console chat, backend status).
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies the requested top-level command.
type Command int

const (
	// CmdTUI launches the full-screen interface. Default when no command
	// is given.
	CmdTUI Command = iota
	CmdChat
	CmdStatus
	CmdVersion
	CmdHelp
)

// Args holds the parsed command arguments.
type Args struct {
	// UserName overrides the persisted display name for console chat.
	UserName string
	// APIURL overrides the configured backend base URL.
	APIURL string
}

// Parse reads os.Args and resolves the command and its flags.
func Parse() (Command, Args) {
	raw := os.Args[1:]

	cmd := CmdTUI
	var args Args
	var positional []string

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			name := strings.TrimLeft(arg, "-")
			value := ""
			if eq := strings.Index(name, "="); eq >= 0 {
				value = name[eq+1:]
				name = name[:eq]
			} else if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				value = raw[i+1]
				i++
			}

			switch name {
			case "user", "u":
				args.UserName = value
			case "api", "api-url":
				args.APIURL = value
			case "version", "v":
				cmd = CmdVersion
			case "help", "h":
				cmd = CmdHelp
			}
			i++
			continue
		}

		positional = append(positional, arg)
		i++
	}

	if len(positional) > 0 {
		switch positional[0] {
		case "chat":
			cmd = CmdChat
		case "status":
			cmd = CmdStatus
		case "version":
			cmd = CmdVersion
		case "help":
			cmd = CmdHelp
		default:
			fmt.Fprintf(os.Stderr, "comando desconocido: %s\n\n", positional[0])
			cmd = CmdHelp
		}
	}

	return cmd, args
}

// HandleVersion prints build information.
func HandleVersion() {
	fmt.Printf("mindcare %s (%s, %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints command usage.
func HandleHelp() {
	fmt.Print(`mindcare - acompañamiento emocional en tu terminal

Uso:
  mindcare              Interfaz completa (chat, alertas, estadísticas)
  mindcare chat         Chat de consola sin interfaz
  mindcare status       Estado del servidor MindCare
  mindcare version      Versión

Opciones:
  --user NAME           Nombre a usar en el chat de consola
  --api URL             URL base del servidor (por defecto, la configurada)
`)
}
