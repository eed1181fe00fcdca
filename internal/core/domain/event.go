package domain

import "time"

// AssetEventType identifies a lifecycle transition on an asset.
type AssetEventType string

const (
	AssetEventCreated  AssetEventType = "created"
	AssetEventReplaced AssetEventType = "replaced"
	AssetEventDeleted  AssetEventType = "deleted"
)

// AssetEvent is published after an asset mutation completes. Publishing is
// best-effort and never blocks the mutation that produced it.
type AssetEvent struct {
	Type           AssetEventType `json:"event"`
	AssetID        int64          `json:"asset_id"`
	StoredFileName string         `json:"stored_file_name"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
