package interfaces

import (
	"context"

	"match-poster-bot/internal/types"
)

// MatchSource supplies the record set for one cycle. Implementations may hit
// the live feed or serve a static sample; callers cannot tell the difference.
type MatchSource interface {
	Fetch(ctx context.Context) ([]types.MatchRecord, error)
}

// Publisher delivers a composed message to the channel. Send returns an
// error for pre-flight credential problems, transport failures, and
// rejections by the messaging API; it never retries.
type Publisher interface {
	Send(ctx context.Context, text string) error
}
