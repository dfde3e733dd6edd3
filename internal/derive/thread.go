package derive

import "github.com/heartmarshall/brainboard/internal/domain"

// Thread is a comment with the replies rendered beneath it.
type Thread struct {
	Comment domain.Comment
	Replies []Thread
}

// Size returns the number of comments in the thread, the root included.
func (t Thread) Size() int {
	n := 1
	for _, r := range t.Replies {
		n += r.Size()
	}
	return n
}

// ThreadComments groups the comments of ideaID into threads.
//
// Top-level comments keep their input order, as do replies under a parent.
// With ThreadPolicyOneLevel every reply, however deep, is attached directly
// to its root comment. With ThreadPolicyNested replies are attached to their
// immediate parent. Replies whose parent chain does not reach a top-level
// comment of the same idea are omitted. An unknown policy is treated as
// one-level.
func ThreadComments(comments []domain.Comment, ideaID string, policy domain.ThreadPolicy) []Thread {
	byID := make(map[string]domain.Comment)
	var roots []domain.Comment
	var replies []domain.Comment
	for _, c := range comments {
		if c.IdeaID != ideaID {
			continue
		}
		byID[c.ID] = c
		if c.IsReply() {
			replies = append(replies, c)
		} else {
			roots = append(roots, c)
		}
	}

	threads := make([]Thread, 0, len(roots))
	if policy == domain.ThreadPolicyNested {
		children := make(map[string][]domain.Comment)
		for _, r := range replies {
			if _, ok := rootOf(r, byID); ok {
				children[*r.ParentID] = append(children[*r.ParentID], r)
			}
		}
		for _, c := range roots {
			threads = append(threads, nest(c, children))
		}
		return threads
	}

	flat := make(map[string][]Thread)
	for _, r := range replies {
		root, ok := rootOf(r, byID)
		if !ok {
			continue
		}
		flat[root] = append(flat[root], Thread{Comment: r})
	}
	for _, c := range roots {
		threads = append(threads, Thread{Comment: c, Replies: flat[c.ID]})
	}
	return threads
}

func nest(c domain.Comment, children map[string][]domain.Comment) Thread {
	t := Thread{Comment: c}
	for _, child := range children[c.ID] {
		t.Replies = append(t.Replies, nest(child, children))
	}
	return t
}

// rootOf follows the parent chain of c up to its top-level comment.
// ok is false when a parent is missing or the chain loops.
func rootOf(c domain.Comment, byID map[string]domain.Comment) (string, bool) {
	seen := map[string]struct{}{c.ID: {}}
	for c.IsReply() {
		parent, ok := byID[*c.ParentID]
		if !ok {
			return "", false
		}
		if _, loop := seen[parent.ID]; loop {
			return "", false
		}
		seen[parent.ID] = struct{}{}
		c = parent
	}
	return c.ID, true
}
