package sighelper

import (
	"context"
	"testing"

	"github.com/tjmnmk/inv-sig-helper/internal/config"
	"github.com/tjmnmk/inv-sig-helper/youtube/player"
)

type staticTimestamper uint64

func (s staticTimestamper) SignatureTimestamp(ctx context.Context, playerID uint32) (uint64, error) {
	return uint64(s), nil
}

func TestHelperDelegatedUpdate(t *testing.T) {
	// Forced ID plus delegated decoding: the whole pass runs without network.
	t.Setenv(config.EnvForcePlayerID, "0004de42")

	h := New(WithTimestampProvider(staticTimestamper(777)))
	if err := h.Update(context.Background()); err != nil {
		t.Fatalf("Update: %v", err)
	}

	info := h.PlayerInfo()
	if info.PlayerID != 0x0004de42 {
		t.Fatalf("player ID = %08x", info.PlayerID)
	}
	if info.SignatureTimestamp != 777 {
		t.Fatalf("timestamp = %d", info.SignatureTimestamp)
	}
	if info.State != player.StatePopulated {
		t.Fatalf("state = %v", info.State)
	}
}

func TestHelperRepeatedUpdateIsInformational(t *testing.T) {
	t.Setenv(config.EnvForcePlayerID, "0004de42")

	h := New(WithTimestampProvider(staticTimestamper(777)))
	if err := h.Update(context.Background()); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	// Populated cache plus active override: the second pass is a silent skip.
	if err := h.Update(context.Background()); err != nil {
		t.Fatalf("second Update: %v", err)
	}
}

func TestHelperStartsUnset(t *testing.T) {
	h := New()
	info := h.PlayerInfo()
	if info.State != player.StateUnset || info.PlayerID != 0 {
		t.Fatalf("fresh helper not unset: %+v", info)
	}
}
