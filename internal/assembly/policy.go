package assembly

import (
	"chronicler/internal/schema"
)

// Viewer is the category of caller a bundle is assembled for.
type Viewer string

const (
	ViewerNPC    Viewer = "npc"
	ViewerPlayer Viewer = "player"
)

// AllowedScopes returns the memory visibility scopes a viewer category may
// see. The mapping is fixed: widening it is a design decision, not a
// parameter. gm_only is never returned for any viewer; game-master-only
// memories do not leave the store through context assembly.
func AllowedScopes(viewer Viewer) map[string]struct{} {
	switch viewer {
	case ViewerNPC:
		return map[string]struct{}{
			schema.ScopePublic:  {},
			schema.ScopeNPCOnly: {},
		}
	case ViewerPlayer:
		return map[string]struct{}{
			schema.ScopePublic:     {},
			schema.ScopePlayerOnly: {},
		}
	}
	return map[string]struct{}{}
}
