package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// User is a board member. Users come from seed data and are never mutated.
type User struct {
	ID       string
	Name     string
	Avatar   string
	Email    string
	IsOnline bool
}

// Clone returns a copy of u.
func (u User) Clone() User { return u }

// Initials returns up to two upper-case letters for avatar fallbacks.
func (u User) Initials() string {
	fields := strings.Fields(u.Name)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		r := []rune(fields[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	}
	first := []rune(fields[0])[:1]
	last := []rune(fields[len(fields)-1])[:1]
	return strings.ToUpper(string(first) + string(last))
}

// ValidateEmail reports whether s is a bare email address.
func ValidateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return fmt.Errorf("invalid email %q: %w", s, err)
	}
	if addr.Address != s {
		return fmt.Errorf("invalid email %q: display names are not allowed", s)
	}
	return nil
}
