package domain

import "time"

// Comment is a remark on an idea, optionally replying to another comment on
// the same idea.
type Comment struct {
	ID        string
	IdeaID    string
	AuthorID  string
	Content   string
	ParentID  *string
	CreatedAt time.Time
}

// Clone returns a deep copy of c.
func (c Comment) Clone() Comment {
	c.ParentID = cloneString(c.ParentID)
	return c
}

// IsReply reports whether c answers another comment.
func (c *Comment) IsReply() bool { return c.ParentID != nil }
