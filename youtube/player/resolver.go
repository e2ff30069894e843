package player

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tjmnmk/inv-sig-helper/internal/config"
	"github.com/tjmnmk/inv-sig-helper/internal/logger"
)

var resolverLog = logger.WithComponent(logger.ComponentResolver)

// Resolver determines the current player ID, either from the operator
// override or by scraping a known-stable watch page.
type Resolver struct {
	client      *http.Client
	testPageURL string
}

// NewResolver returns a resolver fetching the given test page. An empty URL
// selects the default test video.
func NewResolver(client *http.Client, testPageURL string) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	if testPageURL == "" {
		testPageURL = TestVideoURL
	}
	return &Resolver{client: client, testPageURL: testPageURL}
}

// Resolve returns the current player ID. A non-zero operator override wins
// immediately and performs no network call.
func (r *Resolver) Resolve(ctx context.Context) (uint32, error) {
	if forced := config.ForcedPlayerID(); forced != 0 {
		resolverLog.Info("using forced player ID", map[string]interface{}{
			"player_id": strconv.FormatUint(uint64(forced), 16),
		})
		return forced, nil
	}

	page, err := fetchText(ctx, r.client, r.testPageURL)
	if err != nil {
		resolverLog.Error("could not fetch the test video", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, NewError(ErrCodeCannotFetchTestVideo, "test video page unreachable", err.Error())
	}

	groups := playerIDRegex.FindStringSubmatch(page)
	if groups == nil {
		return 0, NewError(ErrCodeCannotMatchPlayerID, "player ID pattern not found in test video page")
	}
	id, err := strconv.ParseUint(groups[1], 16, 32)
	if err != nil {
		return 0, NewError(ErrCodeCannotMatchPlayerID, "player ID is not valid hex", groups[1])
	}
	return uint32(id), nil
}
