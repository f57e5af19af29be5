package pointer

import "strings"

// Set is an immutable collection of suppressed addresses. An address is
// suppressed when it equals a member or is a strict descendant of one. The
// root member "/" suppresses every address, the root included; callers must
// tolerate that configuration degrading a comparison to always-equal.
type Set struct {
	members []string
}

// NewSet builds a suppression set from address strings.
func NewSet(addrs []string) Set {
	members := make([]string, len(addrs))
	copy(members, addrs)
	return Set{members: members}
}

// Members returns the configured addresses in input order.
func (s Set) Members() []string {
	return s.members
}

// IsSuppressed reports whether addr falls on or beneath a member of the set.
func (s Set) IsSuppressed(addr string) bool {
	for _, m := range s.members {
		if m == Root {
			return true
		}
		if addr == m || strings.HasPrefix(addr, m+"/") {
			return true
		}
	}
	return false
}
