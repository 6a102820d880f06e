package navigation

// Ids of the elements the page script binds to.
const (
	NavbarID         = "navbar"
	BackdropCanvasID = "backdrop-canvas"
	HelixCanvasID    = "helix-canvas"
	CircuitCanvasID  = "circuit-canvas"
	MoleculeViewerID = "molecule-viewer"
	MoleculeCanvasID = "molecule-canvas"
	MoleculeToggleID = "molecule-toggle"
)
