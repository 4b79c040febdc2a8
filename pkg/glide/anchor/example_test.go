package anchor_test

import (
	"fmt"

	"github.com/BrandonKowalski/glide/pkg/glide/anchor"
)

// Example demonstrates resolving navbar links against registered sections.
func Example() {
	visible := true

	r := anchor.NewRegistry().
		RegisterStatic("about", 900).
		RegisterStatic("projects", 2400).
		Register("contact", func() (float64, bool) {
			return 5100, visible
		})

	for _, href := range []string{"#about", "#contact", "#missing", "#", "/about"} {
		if id, top, ok := r.Resolve(href); ok {
			fmt.Printf("%s -> %s at %.0f\n", href, id, top)
		} else {
			fmt.Printf("%s -> not intercepted\n", href)
		}
	}

	visible = false
	_, _, ok := r.Resolve("#contact")
	fmt.Println("contact after unmount:", ok)

	// Output:
	// #about -> about at 900
	// #contact -> contact at 5100
	// #missing -> not intercepted
	// # -> not intercepted
	// /about -> not intercepted
	// contact after unmount: false
}

// Example_history demonstrates recording jumps and walking back through them.
func Example_history() {
	s := anchor.NewStack(2)

	s.Push("about", 0)
	s.Push("projects", 900)
	s.Push("contact", 2400)

	fmt.Println("entries:", s.Len())
	for !s.IsEmpty() {
		e := s.Pop()
		fmt.Printf("back from %s to %.0f\n", e.ID, e.Offset)
	}
	fmt.Println("empty pop:", s.Pop() == nil)

	// Output:
	// entries: 2
	// back from contact to 2400
	// back from projects to 900
	// empty pop: true
}
