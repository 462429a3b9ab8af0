package scheduling

import (
	"time"

	"github.com/cultivarhq/cultivar/sdk/dates"
)

// KindOther is the generic task classifier. Every other kind carries its own
// display label; tasks of this kind must be named explicitly by the author.
const KindOther = "other"

// Scope selects how far an edit reaches into a recurring series.
type Scope string

const (
	// ScopeSingle touches exactly the referenced instance.
	ScopeSingle Scope = "single"

	// ScopeAllFuture touches the referenced instance and every sibling due
	// on or after it.
	ScopeAllFuture Scope = "all_future"
)

// DeleteScope selects how much of a series a delete removes.
type DeleteScope string

const (
	// DeleteScopeThis removes only the referenced instance.
	DeleteScopeThis DeleteScope = "this"

	// DeleteScopeAll removes every instance of the series regardless of date.
	DeleteScopeAll DeleteScope = "all"
)

// TargetKind discriminates what a task instance is attached to.
type TargetKind string

const (
	TargetPlant TargetKind = "plant"
	TargetSpace TargetKind = "space"
)

// TargetRef references one plant or space a task applies to. The instance
// references the target, it does not own it.
type TargetRef struct {
	Kind TargetKind
	ID   string
}

// NewTaskRequest is one user-authored task, possibly recurring. A recurring
// request expands into one instance per target per occurrence date.
type NewTaskRequest struct {
	Targets     []TargetRef
	Kind        string // classifier, opaque to the engine except KindOther
	KindLabel   string // display label used as the title for non-generic kinds
	OtherTitle  string // explicit title, required when Kind == KindOther
	Description string
	StartDate   time.Time
	Recurring   bool
	Frequency   dates.Frequency
	EndDate     time.Time // zero when the author gave no end
}

// Changes is a partial edit. Nil fields leave the stored values untouched.
// Under ScopeAllFuture a non-nil Title or Description is applied uniformly to
// the whole future sub-series, and a non-nil DueDate moves every member by
// the same whole-day delta.
type Changes struct {
	Title       *string
	Description *string
	DueDate     *time.Time
}
