package viz

import "github.com/san-kum/expsearch/internal/search"

// Role is the part a bar plays in the current snapshot.
type Role uint8

const (
	RoleIdle   Role = iota // outside anything examined
	RoleProbed             // covered by the exponential probes so far
	RoleProbe              // the probe index being checked
	RoleWindow             // inside the binary search window
	RoleMid                // the binary search midpoint
	RoleFound              // where the target was found
)

var roleNames = [...]string{"idle", "probed", "probe", "window", "mid", "found"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Classify assigns a role to every element of the snapshot's sequence.
//
// During bounding, indices below the probe are probed and the probe itself is
// highlighted while its element is still <= target. During the binary phase
// the window [low, high] is highlighted along with the midpoint being
// checked. A Found snapshot marks only the match.
func Classify(s search.Snapshot[int]) []Role {
	n := s.Len()
	roles := make([]Role, n)

	switch ev := s.Event.(type) {
	case search.Probing:
		markProbes(roles, s, ev.I)
	case search.BoundFound:
		markProbes(roles, s, ev.I)
	case search.BinaryStart:
		markWindow(roles, ev.Low, ev.High)
	case search.Checking:
		markWindow(roles, ev.Low, ev.High)
		if ev.Mid >= 0 && ev.Mid < n {
			roles[ev.Mid] = RoleMid
		}
	case search.BinaryFailed:
		markWindow(roles, ev.Low, ev.High)
	case search.Found:
		if ev.Index >= 0 && ev.Index < n {
			roles[ev.Index] = RoleFound
		}
	}
	return roles
}

func markProbes(roles []Role, s search.Snapshot[int], i int) {
	n := len(roles)
	for k := 0; k < min(i, n); k++ {
		roles[k] = RoleProbed
	}
	if i < n && s.At(i) <= s.Target() {
		roles[i] = RoleProbe
	}
}

func markWindow(roles []Role, low, high int) {
	if low < 0 || high >= len(roles) {
		return
	}
	for k := low; k <= high; k++ {
		roles[k] = RoleWindow
	}
}
