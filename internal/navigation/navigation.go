// Package navigation holds the page's section anchors and the navbar's
// scroll-driven styling rule.
package navigation

// ScrollThreshold is the vertical scroll offset, in CSS pixels, past which
// the navbar switches to its scrolled style.
const ScrollThreshold = 10

// Section is an in-page anchor target.
type Section struct {
	Name string
	ID   string
}

// Href returns the fragment link for the section.
func (s Section) Href() string {
	return "#" + s.ID
}

// Sections lists the navbar entries in page order.
var Sections = []Section{
	{Name: "Home", ID: "hero"},
	{Name: "Problem", ID: "problem"},
	{Name: "About", ID: "about"},
	{Name: "Features", ID: "features"},
	{Name: "Contact", ID: "contact"},
}

// ShouldHighlight reports whether the navbar renders in its scrolled style
// for the given scroll offset.
func ShouldHighlight(scrollY float64) bool {
	return scrollY > ScrollThreshold
}

// Lookup returns the section with the given id.
func Lookup(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
