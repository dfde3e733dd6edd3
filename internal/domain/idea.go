package domain

import (
	"slices"
	"time"
)

// Idea is a single contribution within a topic.
type Idea struct {
	ID         string
	TopicID    string
	Title      string
	Content    string
	AuthorID   string
	CategoryID string
	CustomTags []string
	Votes      []string // user ids, no duplicates
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone returns a deep copy of i.
func (i Idea) Clone() Idea {
	i.CustomTags = slices.Clone(i.CustomTags)
	i.Votes = slices.Clone(i.Votes)
	return i
}

// VoteCount returns the number of votes cast on the idea.
func (i *Idea) VoteCount() int { return len(i.Votes) }

// HasVoted reports whether userID has voted on the idea.
func (i *Idea) HasVoted(userID string) bool {
	return slices.Contains(i.Votes, userID)
}

// ToggleVote flips userID's vote: a present vote is retracted, an absent one
// is appended. It returns true when the call cast a vote.
func (i *Idea) ToggleVote(userID string, now time.Time) bool {
	voted := !i.HasVoted(userID)
	if voted {
		i.Votes = append(slices.Clone(i.Votes), userID)
	} else {
		i.Votes = slices.DeleteFunc(slices.Clone(i.Votes), func(id string) bool { return id == userID })
	}
	i.UpdatedAt = now
	return voted
}
