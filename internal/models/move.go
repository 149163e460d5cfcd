package models

// MoveStatus describes the outcome of organizing one file.
type MoveStatus string

const (
	// StatusMoved means the file was moved into its category folder.
	StatusMoved MoveStatus = "moved"
	// StatusSkipped means the file was intentionally left in place.
	StatusSkipped MoveStatus = "skipped"
	// StatusFailed means the move was attempted and failed.
	StatusFailed MoveStatus = "failed"
)

// MoveResult is the per-file outcome of an organizer run.
type MoveResult struct {
	File        string
	Category    string
	Destination string
	Status      MoveStatus
	Reason      string
}

// OrganizeReport summarizes a whole organizer run. Partial completion is
// a visible, accepted end state: moved and failed counts can both be non-zero.
type OrganizeReport struct {
	Directory string
	Results   []MoveResult
}

// Moved returns the number of files moved.
func (r *OrganizeReport) Moved() int { return r.count(StatusMoved) }

// Skipped returns the number of files skipped.
func (r *OrganizeReport) Skipped() int { return r.count(StatusSkipped) }

// Failed returns the number of files that could not be moved.
func (r *OrganizeReport) Failed() int { return r.count(StatusFailed) }

func (r *OrganizeReport) count(status MoveStatus) int {
	n := 0
	for _, result := range r.Results {
		if result.Status == status {
			n++
		}
	}
	return n
}
