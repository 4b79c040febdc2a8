package glide

// Authority names which driver may currently write the scroll position.
type Authority int

const (
	AuthorityIdle     Authority = iota // Nothing is animating
	AuthorityEasing                    // Continuous drift toward the target
	AuthorityTweening                  // One-shot tween toward an anchor
)

func (a Authority) String() string {
	switch a {
	case AuthorityIdle:
		return "idle"
	case AuthorityEasing:
		return "easing"
	case AuthorityTweening:
		return "tweening"
	default:
		return "unknown"
	}
}

// Disposition is a listener's verdict on the platform's default action.
type Disposition int

const (
	PassThrough    Disposition = iota // Let the platform handle the event natively
	PreventDefault                    // The event was consumed; suppress native handling
)
