package constants

// Disposition is the terminal outcome assigned to a processed document.
type Disposition string

// Stable values (store these exact strings in DB).
const (
	DispositionCreated      Disposition = "CREATED"       // invoice persisted
	DispositionDuplicate    Disposition = "DUPLICATE"     // linked to an existing invoice
	DispositionManualReview Disposition = "MANUAL_REVIEW" // queued for human review
	DispositionError        Disposition = "ERROR"         // text source failed outright
)
