package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EndBlocker sweeps overdue sessions through the timeout path. Anyone may also
// trigger a timeout manually; the sweep only guarantees overdue sessions do
// not linger when nobody bothers.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	var expired []uint64
	k.IterateExpiredSessions(ctx, now, func(id uint64) bool {
		expired = append(expired, id)
		return false
	})

	for _, id := range expired {
		if err := k.TriggerTimeout(ctx, id); err != nil {
			// The index entry may be slightly ahead of the wall clock because
			// Expiry comparison is strict; leave the entry for a later block.
			k.Logger(sdkCtx).Debug("timeout sweep skipped session", "session_id", id, "err", err)
		}
	}
	return nil
}
