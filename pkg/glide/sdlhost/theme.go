package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of the demo page.
type Theme struct {
	BackgroundColor     sdl.Color // Page background
	TextColor           sdl.Color // Body text
	TitleColor          sdl.Color // Section titles
	HintColor           sdl.Color // Footer hints, inactive nav links
	AccentColor         sdl.Color // Scrollbar handle, scroll-to-top button
	NavbarColor         sdl.Color // Navbar fill once the page is scrolled
	DividerColor        sdl.Color // Rule under each section title
	FontPath            string    // Path to a TTF font
	BackgroundImagePath string    // Optional image drawn behind the page
}

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: sdl.Color{R: 10, G: 10, B: 12, A: 255},
		TextColor:       sdl.Color{R: 200, G: 200, B: 200, A: 255},
		TitleColor:      sdl.Color{R: 255, G: 255, B: 255, A: 255},
		HintColor:       sdl.Color{R: 140, G: 140, B: 140, A: 255},
		AccentColor:     sdl.Color{R: 120, G: 110, B: 230, A: 255},
		NavbarColor:     sdl.Color{R: 0, G: 0, B: 0, A: 180},
		DividerColor:    sdl.Color{R: 80, G: 80, B: 80, A: 255},
	}
}
