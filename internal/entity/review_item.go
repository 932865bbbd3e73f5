package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReviewItem represents a manual-review queue entry. PartialData preserves
// whatever the pipeline managed to extract so a human can correct and
// resubmit instead of re-extracting from scratch.
type ReviewItem struct {
	ID          uuid.UUID       `json:"id"`
	WorkspaceID uuid.UUID       `json:"workspace_id"`
	FilePath    string          `json:"file_path"`
	Reason      string          `json:"reason"`
	PartialData json.RawMessage `json:"partial_data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
