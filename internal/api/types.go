// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the MindCare analysis backend.
package api

// Wire types for the backend JSON API. Field names follow the backend's
// Spanish vocabulary exactly; translation into domain types happens in the
// client, not in the views.

// chatRequest is the body of POST /chat.
type chatRequest struct {
	Mensaje  string `json:"mensaje"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// chatResponse is the success body of POST /chat.
type chatResponse struct {
	Respuesta string        `json:"respuesta"`
	Analisis  *wireAnalysis `json:"analisis"`
	// Error is the backend's logical error field. A response can carry it
	// even under a 2xx status; it is never silently dropped.
	Error string `json:"error"`
}

// wireAnalysis is the sentiment/risk analysis attached to a chat reply.
type wireAnalysis struct {
	Clasificacion string   `json:"clasificacion"`
	Riesgo        string   `json:"riesgo"`
	Puntuacion    float64  `json:"puntuacion"`
	Valor         *float64 `json:"valor"`
}

// alertsResponse is the body of GET /alerts.
type alertsResponse struct {
	UserID string      `json:"user_id"`
	Alerts []wireAlert `json:"alerts"`
	Error  string      `json:"error"`
}

// wireAlert is one stored alert row as returned by the backend.
type wireAlert struct {
	Mensaje       string   `json:"mensaje"`
	Clasificacion string   `json:"clasificacion"`
	Riesgo        string   `json:"riesgo"`
	Puntuacion    *float64 `json:"puntuacion"`
	Valor         *float64 `json:"valor"`
	FechaAlerta   string   `json:"fecha_alerta"`
}

// statsResponse is the body of GET /stats.
type statsResponse struct {
	TotalInteracciones int             `json:"total_interacciones"`
	UltimoEstado       string          `json:"ultimo_estado"`
	UltimoRiesgo       string          `json:"ultimo_riesgo"`
	ConteoRiesgos      map[string]int  `json:"conteo_riesgos"`
	TendenciaEmocional []wireTrendStep `json:"tendencia_emocional"`
	Error              string          `json:"error"`
}

// wireTrendStep is one point of the emotional trend series.
type wireTrendStep struct {
	Fecha string  `json:"fecha"`
	Valor float64 `json:"valor"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Ollama  string `json:"ollama"`
	Version string `json:"version"`
}
