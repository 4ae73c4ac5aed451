// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package resources implements the static self-help resources view.
package resources

import (
	"strings"

	"github.com/mindcare/mindcare-tui/internal/ui/styles"
)

// Model renders the resources view. The content is static; entering the
// view triggers no fetch.
type Model struct {
	theme *styles.Theme
}

// New creates the resources view.
func New(theme *styles.Theme) Model {
	return Model{theme: theme}
}

type resource struct {
	title string
	body  string
}

var resourceList = []resource{
	{
		title: "Línea de atención en crisis",
		body:  "Si estás en peligro inmediato, llama al 024 (atención 24 horas) o al 112.",
	},
	{
		title: "Respiración consciente",
		body:  "Inhala 4 segundos, sostén 4, exhala 6. Repite durante dos minutos cuando notes ansiedad.",
	},
	{
		title: "Higiene del sueño",
		body:  "Mantén horarios regulares y evita pantallas la última hora del día.",
	},
	{
		title: "Hablar con un profesional",
		body:  "Este espacio acompaña, pero no sustituye a la terapia. Un profesional puede ayudarte mucho más.",
	},
}

// View renders the static resource cards.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("Recursos de apoyo"))
	b.WriteString("\n\n")

	for i, r := range resourceList {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.theme.StatsValue.Render(r.title))
		b.WriteString("\n")
		b.WriteString(r.body)
	}

	return b.String()
}
