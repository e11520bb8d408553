package components

// Fixed card geometry. A fixed footprint keeps the drag hit-testing and the
// tilt shear math simple; content is clipped or padded to fit.
const (
	// CardWidth is the inner width of the card in cells (borders excluded)
	CardWidth = 44

	// CardHeight is the inner height of the card in cells
	CardHeight = 17

	// ImagePaneHeight is the inner height of the image area at the top of the card
	ImagePaneHeight = 7

	// maxShearCells is how far the card's top edge leans at full tilt
	maxShearCells = 6

	// cardTitleMaxLength truncates long titles before they wrap
	cardTitleMaxLength = 38
)
