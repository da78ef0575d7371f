package repository

// Follow-up status values. A follow-up counts as open while it is still
// pending or in progress.
const (
	FollowupPending    = "Pending"
	FollowupInProgress = "In Progress"
	FollowupCompleted  = "Completed"
	FollowupNotNeeded  = "No Follow-up Needed"
)

// Issue priority values.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Issue lifecycle status values. Status is otherwise free text; these two
// are the values the system itself assigns.
const (
	IssueStatusOpen     = "Open"
	IssueStatusResolved = "Resolved"
)
