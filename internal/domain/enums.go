package domain

// UserRole is a participant's role on a topic. Roles are display labels only.
type UserRole string

const (
	UserRoleOwner       UserRole = "owner"
	UserRoleAdmin       UserRole = "admin"
	UserRoleParticipant UserRole = "participant"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleParticipant:
		return true
	}
	return false
}

// WorkflowStage is one of the fixed, ordered phases of a topic.
type WorkflowStage string

const (
	StageIntroduction   WorkflowStage = "introduction"
	StageSubmission     WorkflowStage = "submission"
	StageClassification WorkflowStage = "classification"
	StageReview         WorkflowStage = "review"
	StageVoting         WorkflowStage = "voting"
	StageFinalization   WorkflowStage = "finalization"
)

// WorkflowStages lists every stage in workflow order.
var WorkflowStages = []WorkflowStage{
	StageIntroduction,
	StageSubmission,
	StageClassification,
	StageReview,
	StageVoting,
	StageFinalization,
}

func (s WorkflowStage) String() string { return string(s) }

func (s WorkflowStage) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in WorkflowStages, or -1.
func (s WorkflowStage) Index() int {
	for i, st := range WorkflowStages {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the stage after s. ok is false for finalization and for
// unknown stages.
func (s WorkflowStage) Next() (next WorkflowStage, ok bool) {
	i := s.Index()
	if i < 0 || i == len(WorkflowStages)-1 {
		return "", false
	}
	return WorkflowStages[i+1], true
}

// Label returns the human-readable stage name.
func (s WorkflowStage) Label() string {
	switch s {
	case StageIntroduction:
		return "Introduction"
	case StageSubmission:
		return "Submission"
	case StageClassification:
		return "Classification"
	case StageReview:
		return "Review"
	case StageVoting:
		return "Voting"
	case StageFinalization:
		return "Finalization"
	}
	return string(s)
}

// EntityType identifies the kind of domain entity (used in activity records
// and reference errors).
type EntityType string

const (
	EntityTypeUser     EntityType = "USER"
	EntityTypeTopic    EntityType = "TOPIC"
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypeIdea     EntityType = "IDEA"
	EntityTypeComment  EntityType = "COMMENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeTopic, EntityTypeCategory, EntityTypeIdea, EntityTypeComment:
		return true
	}
	return false
}

// ActivityAction represents the kind of mutation recorded in the activity feed.
type ActivityAction string

const (
	ActivityActionCreate  ActivityAction = "CREATE"
	ActivityActionUpdate  ActivityAction = "UPDATE"
	ActivityActionVote    ActivityAction = "VOTE"
	ActivityActionUnvote  ActivityAction = "UNVOTE"
	ActivityActionJoin    ActivityAction = "JOIN"
	ActivityActionAdvance ActivityAction = "ADVANCE"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionCreate, ActivityActionUpdate, ActivityActionVote,
		ActivityActionUnvote, ActivityActionJoin, ActivityActionAdvance:
		return true
	}
	return false
}

// IdeaSortKey selects the ordering of an idea list.
type IdeaSortKey string

const (
	IdeaSortNewest   IdeaSortKey = "newest"
	IdeaSortOldest   IdeaSortKey = "oldest"
	IdeaSortVotes    IdeaSortKey = "votes"
	IdeaSortComments IdeaSortKey = "comments"
	IdeaSortTitle    IdeaSortKey = "title"
	IdeaSortAuthor   IdeaSortKey = "author"
	IdeaSortCategory IdeaSortKey = "category"
)

func (k IdeaSortKey) String() string { return string(k) }

func (k IdeaSortKey) IsValid() bool {
	switch k {
	case IdeaSortNewest, IdeaSortOldest, IdeaSortVotes, IdeaSortComments,
		IdeaSortTitle, IdeaSortAuthor, IdeaSortCategory:
		return true
	}
	return false
}

// DefaultOrder is the direction a key sorts in when no order is requested.
// Counts and recency rank high-first; text columns sort alphabetically.
func (k IdeaSortKey) DefaultOrder() SortOrder {
	switch k {
	case IdeaSortOldest, IdeaSortTitle, IdeaSortAuthor, IdeaSortCategory:
		return SortOrderAsc
	}
	return SortOrderDesc
}

// SortOrder is a sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// ThreadPolicy controls how reply chains deeper than one level are rendered.
type ThreadPolicy string

const (
	// ThreadPolicyOneLevel attaches every reply to its root comment.
	ThreadPolicyOneLevel ThreadPolicy = "one-level"
	// ThreadPolicyNested keeps the full reply tree.
	ThreadPolicyNested ThreadPolicy = "nested"
)

func (p ThreadPolicy) String() string { return string(p) }

func (p ThreadPolicy) IsValid() bool {
	return p == ThreadPolicyOneLevel || p == ThreadPolicyNested
}
