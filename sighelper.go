// Package sighelper wires the player update pipeline to the shared player
// cache consumed by the job-processing side of the process.
package sighelper

import (
	"context"
	"net/http"

	"github.com/tjmnmk/inv-sig-helper/youtube/player"
)

// Helper owns the process-wide player cache and the updater that maintains it.
type Helper struct {
	cache   *player.Cache
	updater *player.Updater
}

// Option configures a Helper.
type Option func(*player.Options)

// WithHTTPClient sets the HTTP client used for all fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(o *player.Options) { o.HTTPClient = client }
}

// WithBaseURL overrides the player bundle host.
func WithBaseURL(baseURL string) Option {
	return func(o *player.Options) { o.BaseURL = baseURL }
}

// WithTestPageURL overrides the watch page used for identity resolution.
func WithTestPageURL(url string) Option {
	return func(o *player.Options) { o.TestPageURL = url }
}

// WithTimestampProvider enables the delegated-decoding short circuit.
func WithTimestampProvider(p player.TimestampProvider) Option {
	return func(o *player.Options) { o.Delegate = p }
}

// New creates a Helper with an empty cache.
func New(opts ...Option) *Helper {
	var options player.Options
	for _, opt := range opts {
		opt(&options)
	}
	cache := player.NewCache()
	return &Helper{
		cache:   cache,
		updater: player.NewUpdater(cache, options),
	}
}

// Update runs one update pass. A PLAYER_ALREADY_UPDATED result is
// informational; check with player.IsAlreadyUpdated.
func (h *Helper) Update(ctx context.Context) error {
	return h.updater.Update(ctx)
}

// PlayerInfo returns a version-consistent snapshot of the cached player data.
func (h *Helper) PlayerInfo() player.Info {
	return h.cache.Snapshot()
}
