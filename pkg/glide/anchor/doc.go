// Package anchor resolves in-page fragment links to scroll offsets and keeps
// the history of anchor jumps for back navigation.
//
// # Registry
//
// A Registry maps element ids to functions that report the element's current
// top offset. Offsets are looked up at activation time so layout changes
// between registration and the click are always reflected.
//
//	r := anchor.NewRegistry().
//	    RegisterStatic("about", 900).
//	    Register("projects", func() (float64, bool) {
//	        return page.SectionTop("projects")
//	    })
//
//	if id, top, ok := r.Resolve("#about"); ok {
//	    // id == "about", top == 900
//	}
//
// Only local fragments resolve: "#" on its own, relative paths and absolute
// URLs are left to the host.
//
// # History
//
// Every anchor jump pushes the offset the page was at before the jump onto a
// Stack. Popping returns the most recent entry so the controller can tween
// back to where the reader came from.
package anchor
