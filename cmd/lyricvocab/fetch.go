package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/japaniel/lyricvocab/pkg/lyrics"
)

// maxBodySize caps lyric pages; anything larger is not a lyrics page.
const maxBodySize = 10 * 1024 * 1024

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// fetchLyrics downloads a lyrics page and extracts its main text.
func fetchLyrics(ctx context.Context, rawURL string) (lyrics.Document, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return lyrics.Document{}, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return lyrics.Document{}, fmt.Errorf("create request: %w", err)
	}
	// Many lyric sites refuse requests without browser-like headers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := fetchClient.Do(req)
	if err != nil {
		return lyrics.Document{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return lyrics.Document{}, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	if resp.ContentLength > maxBodySize {
		return lyrics.Document{}, fmt.Errorf("content-length %d exceeds limit of %d bytes", resp.ContentLength, maxBodySize)
	}

	// Read one byte past the limit to tell "exactly at the limit" from "truncated".
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return lyrics.Document{}, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodySize {
		return lyrics.Document{}, fmt.Errorf("response body exceeded maximum size of %d bytes", maxBodySize)
	}

	return lyrics.FromHTML(bytes.NewReader(body), pageURL)
}
