// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TradeDeck Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tradedeck-app/tradedeck/internal/config"
	"github.com/tradedeck-app/tradedeck/internal/logger"
	"github.com/tradedeck-app/tradedeck/internal/utils"
)

// vaultFileName is the single file inside the gist that carries the
// encoded blob.
const vaultFileName = "tradedeck.vault"

type gistAdapter struct {
	client *utils.HTTPClient

	gistID string
	token  string

	logger *logger.Logger
}

// gistFile mirrors the per-file object of the GitHub Gist REST API.
type gistFile struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
}

type gistPayload struct {
	Files map[string]gistFile `json:"files"`
}

// NewGistAdapter constructs a GitHub Gist implementation of [CloudSync].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.GistID or cfg.Token is empty, or if cfg.BaseURL
// cannot be parsed as a valid URL.
func NewGistAdapter(cfg config.Sync, logger *logger.Logger) (CloudSync, error) {
	if cfg.GistID == "" {
		return nil, fmt.Errorf("gist adapter: empty gist id")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("gist adapter: empty token")
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetAuthToken(cfg.Token)

	return &gistAdapter{client: client, gistID: cfg.GistID, token: cfg.Token, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "https://api.github.com"
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [CloudSync]. It PATCHes the gist, replacing the vault
// file's content with blob. The blob is ciphertext end to end; the gist
// host only ever sees the opaque encoded form.
func (g *gistAdapter) Upload(ctx context.Context, blob string) error {
	payload := gistPayload{Files: map[string]gistFile{
		vaultFileName: {Content: blob},
	}}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Patch("/gists/" + g.gistID)
	if err != nil {
		return fmt.Errorf("upload vault blob: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	g.logger.Debug().Int("bytes", len(blob)).Msg("vault blob uploaded to gist")
	return nil
}

// Download implements [CloudSync]. It GETs the gist and extracts the vault
// file's content. Returns [ErrNotFound] (wrapped) if the gist exists but
// holds no vault file, or if the file was truncated by the API and the
// full content is not inline.
func (g *gistAdapter) Download(ctx context.Context) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/gists/" + g.gistID)
	if err != nil {
		return "", fmt.Errorf("download vault blob: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var payload gistPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode gist response: %w", err)
	}

	file, ok := payload.Files[vaultFileName]
	if !ok {
		return "", fmt.Errorf("%w: gist has no %s file", ErrNotFound, vaultFileName)
	}
	if file.Truncated {
		return "", fmt.Errorf("%w: %s is truncated in the gist response", ErrNotFound, vaultFileName)
	}

	g.logger.Debug().Int("bytes", len(file.Content)).Msg("vault blob downloaded from gist")
	return file.Content, nil
}
