package player

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tjmnmk/inv-sig-helper/internal/config"
	"github.com/tjmnmk/inv-sig-helper/internal/logger"
)

var playerLog = logger.WithComponent(logger.ComponentPlayer)

// TimestampProvider is the delegated-decoding collaborator. When configured,
// the orchestrator skips bundle parsing entirely and records only the player
// ID and the timestamp the collaborator reports; token decoding then happens
// out-of-process.
type TimestampProvider interface {
	SignatureTimestamp(ctx context.Context, playerID uint32) (uint64, error)
}

// Updater runs the player update pipeline: identity resolution, cache
// freshness check, bundle retrieval, extraction, and the single atomic cache
// commit. It owns all network calls and all cache mutation.
type Updater struct {
	cache    *Cache
	client   *http.Client
	resolver *Resolver
	baseURL  string
	delegate TimestampProvider
	now      func() time.Time
}

// Options tunes an Updater. Zero values select production defaults.
type Options struct {
	// HTTPClient used for all fetches. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// BaseURL for player bundle downloads. Defaults to the public host.
	BaseURL string
	// TestPageURL overrides the watch page used for identity resolution.
	TestPageURL string
	// Delegate, when non-nil, enables the delegated-decoding short circuit.
	Delegate TimestampProvider
}

// NewUpdater creates an updater mutating the given shared cache.
func NewUpdater(cache *Cache, opts Options) *Updater {
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Updater{
		cache:    cache,
		client:   client,
		resolver: NewResolver(client, opts.TestPageURL),
		baseURL:  baseURL,
		delegate: opts.Delegate,
		now:      time.Now,
	}
}

// Update performs one run of the pipeline. It returns nil on success or on an
// administrative skip, a PLAYER_ALREADY_UPDATED error (informational, check
// with IsAlreadyUpdated) when the cache is already current, and one of the
// fatal typed errors otherwise. The cache is never partially mutated on a
// fatal outcome.
func (u *Updater) Update(ctx context.Context) error {
	playerID, err := u.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	snap := u.cache.Snapshot()
	if snap.State == StatePopulated {
		if config.ForcedPlayerID() != 0 {
			playerLog.Info("player ID forced, skipping update")
			return nil
		}
		if config.UpdateDisabled() {
			playerLog.Info("player update disabled, skipping update")
			return nil
		}
	}

	if playerID == snap.PlayerID {
		u.cache.Touch(u.now())
		return NewError(ErrCodePlayerAlreadyUpdated, "player already updated")
	}

	if u.delegate != nil {
		ts, err := u.delegate.SignatureTimestamp(ctx, playerID)
		if err != nil {
			return fmt.Errorf("delegated signature timestamp: %w", err)
		}
		u.cache.CommitDelegated(playerID, ts, u.now())
		playerLog.Info("committed delegated player update", map[string]interface{}{
			"player_id": fmt.Sprintf("%08x", playerID),
			"sts":       ts,
		})
		return nil
	}

	playerJSURL := u.baseURL + fmt.Sprintf(playerJSPathFormat, playerID)
	playerLog.Info("fetching player JS", map[string]interface{}{
		"url": playerJSURL,
	})
	playerJS, err := fetchText(ctx, u.client, playerJSURL)
	if err != nil {
		playerLog.Error("could not fetch the player JS", map[string]interface{}{
			"error": err.Error(),
		})
		return NewError(ErrCodeCannotFetchPlayerJS, "player bundle unreachable", err.Error())
	}

	nsigName, err := extractNsigFunctionName(playerJS)
	if err != nil {
		return err
	}
	playerLog.Debug("nsig function name", map[string]interface{}{
		"name": nsigName,
	})

	nsigCode, err := extractNsigFunctionCode(playerJS, nsigName)
	if err != nil {
		return err
	}

	sigName, sigBody, err := extractSigFunction(playerJS)
	if err != nil {
		return err
	}
	helperBody, err := extractHelperObject(playerJS, sigBody)
	if err != nil {
		return err
	}
	sigCode := buildSigCode(playerJS, sigName, sigBody, helperBody)

	sigTimestamp, err := extractSignatureTimestamp(playerJS)
	if err != nil {
		return err
	}

	u.cache.Commit(playerID, nsigCode, sigCode, sigName, sigTimestamp, u.now())
	playerLog.Info("committed player update", map[string]interface{}{
		"player_id": fmt.Sprintf("%08x", playerID),
		"sts":       sigTimestamp,
	})
	return nil
}
