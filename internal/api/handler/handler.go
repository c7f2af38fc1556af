package handler

import (
	"time"

	"anonchat/backend/internal/chathub"
	"anonchat/backend/internal/quota"
	"anonchat/backend/internal/report"
	"anonchat/backend/internal/storage"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	Hub     *chathub.Gateway
	Storage storage.Storage
	Quota   quota.Gate
	Reports *report.Service

	JWTSecret []byte
	TokenTTL  time.Duration
}

// NewHandler wires a handler set.
func NewHandler(hub *chathub.Gateway, s storage.Storage, gate quota.Gate, reports *report.Service, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		Hub:       hub,
		Storage:   s,
		Quota:     gate,
		Reports:   reports,
		JWTSecret: []byte(jwtSecret),
		TokenTTL:  tokenTTL,
	}
}
