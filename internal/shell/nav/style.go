package nav

// Navbar heights in pixels. The tall bar is only used on the unscrolled
// home page where the background is transparent.
const (
	HeightTall  = 80
	HeightSolid = 64
)

// ScrollThreshold is the scroll offset in pixels past which the navbar
// switches to its solid treatment.
const ScrollThreshold = 20

// StyleBundle is the computed navbar appearance
type StyleBundle struct {
	Background string
	TextColor  string
	LinkColor  string
	Height     int
}

// Style computes the navbar appearance from the two inputs that actually
// matter. The home page is transparent until the viewer scrolls; every
// other page is always solid. Authenticated and guest sessions share the
// same treatment.
func Style(isHomePage, isScrolled bool) StyleBundle {
	if isHomePage && !isScrolled {
		return StyleBundle{
			Background: "transparent",
			TextColor:  "#ffffff",
			LinkColor:  "#e2e8f0",
			Height:     HeightTall,
		}
	}
	return StyleBundle{
		Background: "#1e293b",
		TextColor:  "#f8fafc",
		LinkColor:  "#cbd5e1",
		Height:     HeightSolid,
	}
}
