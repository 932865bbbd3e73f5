package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/constants"
)

// BatchResult buckets every input file into exactly one disposition
// list; SavedFiles echoes everything that was accepted for processing.
type BatchResult struct {
	SavedFiles   []string  `json:"saved_files"`
	Created      []Outcome `json:"created"`
	Duplicates   []Outcome `json:"duplicates"`
	ManualReview []Outcome `json:"manual_review"`
	Errors       []Outcome `json:"errors"`
}

// ProcessBatch runs files sequentially. Order matters: duplicate
// detection within the batch depends on earlier files being persisted
// before later ones are checked.
func (p *Processor) ProcessBatch(ctx context.Context, workspaceID uuid.UUID, files []string) BatchResult {
	var res BatchResult
	for _, f := range files {
		res.SavedFiles = append(res.SavedFiles, f)

		out := p.ProcessFile(ctx, workspaceID, f)
		switch out.Disposition {
		case constants.DispositionCreated:
			res.Created = append(res.Created, out)
		case constants.DispositionDuplicate:
			res.Duplicates = append(res.Duplicates, out)
		case constants.DispositionManualReview:
			res.ManualReview = append(res.ManualReview, out)
		default:
			res.Errors = append(res.Errors, out)
		}
	}

	p.Logger.Info("pipeline.batch.done",
		"workspace_id", workspaceID,
		"files", len(files),
		"created", len(res.Created),
		"duplicates", len(res.Duplicates),
		"manual_review", len(res.ManualReview),
		"errors", len(res.Errors))
	return res
}
