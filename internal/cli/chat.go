// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Console chat handler for the mindcare CLI.
//
// Handles "mindcare chat": a plain-terminal conversation with the backend,
// without the full-screen interface. Useful over SSH or in scripts of the
// support team.
//
// Interactive commands during chat:
//   salir, exit         End the conversation
//   Ctrl+C / Ctrl+D     End the conversation

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/mindcare/mindcare-tui/internal/api"
	"github.com/mindcare/mindcare-tui/internal/config"
	"github.com/mindcare/mindcare-tui/internal/session"
	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Indigo).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// consoleInput provides line editing and input history for console chat.
type consoleInput struct {
	line        *liner.State
	historyFile string
}

func newConsoleInput() *consoleInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &consoleInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.loadHistory()
	return c
}

func (c *consoleInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

func (c *consoleInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

func (c *consoleInput) read(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *consoleInput) close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the console conversation loop.
func HandleChat(args Args) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "mindcare chat necesita una terminal interactiva")
		os.Exit(1)
	}

	cfg := config.Global()
	client := newClient(cfg, args)

	store, err := session.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input := newConsoleInput()
	defer input.close()

	sess, err := resolveSession(store, input, args.UserName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(welcomeStyle.Render("Hola " + sess.UserName + ", estoy aquí para escucharte."))
	fmt.Println(infoStyle.Render("Escribe 'salir' cuando quieras terminar."))
	fmt.Println()

	for {
		text, err := input.read(promptStyle.Render("Tú> "))
		if err != nil {
			// Ctrl+C or Ctrl+D ends the conversation.
			fmt.Println()
			break
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if isFarewell(text) {
			break
		}

		reply(client, sess, text)
	}

	fmt.Println(welcomeStyle.Render("Cuídate mucho. Recuerda que no estás solo."))
}

// isFarewell matches the exit words of the conversation.
func isFarewell(text string) bool {
	switch strings.ToLower(text) {
	case "salir", "exit", "quit", "adiós", "adios":
		return true
	}
	return false
}

// reply sends one message and prints the response with its analysis line.
func reply(client *api.Client, sess session.Session, text string) {
	result, err := client.SendMessage(context.Background(), sess.UserID, sess.UserName, text)
	if err != nil {
		fmt.Println(errorStyle.Render("No pude conectar con el servidor: " + err.Error()))
		fmt.Println()
		return
	}

	fmt.Println()
	fmt.Println("MindCare: " + result.Reply)

	if result.Risk != nil {
		meta, ok := result.Risk.Level.Meta()
		if ok {
			line := fmt.Sprintf("%s %s · %s · puntuación %.3f",
				meta.Icon, meta.Label, result.Risk.Classification, result.Score)
			fmt.Println(infoStyle.Render(line))
		}
	}
	fmt.Println()
}

// resolveSession picks the identity for console chat: the --user flag, the
// persisted profile, or an interactive prompt, in that order.
func resolveSession(store *session.Store, input *consoleInput, override string) (session.Session, error) {
	if override != "" {
		return store.Start(override)
	}
	if sess, ok := store.Restore(); ok {
		return sess, nil
	}

	for {
		name, err := input.read("¿Cómo te llamas? ")
		if err != nil {
			return session.Session{}, err
		}
		sess, err := store.Start(name)
		if err == nil {
			return sess, nil
		}
		if errors.Is(err, session.ErrNameTooShort) {
			fmt.Println(errorStyle.Render("El nombre debe tener al menos 2 caracteres."))
			continue
		}
		return session.Session{}, err
	}
}

// newClient builds the backend client from config plus CLI overrides.
func newClient(cfg *config.Config, args Args) *api.Client {
	clientCfg := api.DefaultConfig()
	clientCfg.BaseURL = cfg.BaseURL()
	clientCfg.Timeout = time.Duration(cfg.API.TimeoutSecs) * time.Second
	if args.APIURL != "" {
		clientCfg.BaseURL = strings.TrimRight(args.APIURL, "/")
	}
	return api.NewClientWithConfig(clientCfg)
}
