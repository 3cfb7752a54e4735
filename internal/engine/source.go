package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// IsRemote reports whether location designates an http(s) resource.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, config.SchemeHTTP+"://") || strings.HasPrefix(l, config.SchemeHTTPS+"://")
}

// OpenSource opens a vCard from a local path or, through fetcher, an
// http(s) URL.
func OpenSource(ctx context.Context, fetcher VCardFetcher, location string) (io.ReadCloser, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New(config.ErrSourceEmpty)
	}
	if !IsRemote(location) {
		return os.Open(location)
	}
	if fetcher == nil {
		return nil, errors.New(config.ErrFetcherMissing)
	}
	return fetcher.Fetch(ctx, location)
}

// ImportFromSource opens location and extracts the first full birth date.
func ImportFromSource(ctx context.Context, fetcher VCardFetcher, location string) (time.Time, string, error) {
	rc, err := OpenSource(ctx, fetcher, location)
	if err != nil {
		if ctx.Err() != nil {
			return time.Time{}, "", ctx.Err()
		}
		return time.Time{}, "", fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = rc.Close() }()

	if err := ctx.Err(); err != nil {
		return time.Time{}, "", err
	}

	birth, name, err := ImportBirth(rc)
	if err != nil {
		return time.Time{}, "", err
	}

	slog.Info(config.MsgImported,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyName, name,
		config.LogKeyDOB, birth.Format(config.InputFormatLocalSeconds))
	return birth, name, nil
}
