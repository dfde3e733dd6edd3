package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// ListUsers returns all users in seed order. A non-blank query keeps only
// users whose name or email contains it, ignoring case.
func (s *Service) ListUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return users, nil
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if domain.ContainsFold(u.Name, query) || domain.ContainsFold(u.Email, query) {
			out = append(out, u)
		}
	}
	return out, nil
}
