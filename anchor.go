package minimap

// DefaultMargin is the gap kept between an anchored overlay and the host edge.
const DefaultMargin = 20.0

// Anchor names one of nine preset placements of the overlay inside the host.
// Top and bottom follow reading order, so AnchorTopLeft is the visual top-left
// corner under both Y-axis conventions.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

var anchorNames = [...]string{
	AnchorTopLeft:      "top-left",
	AnchorTopCenter:    "top-center",
	AnchorTopRight:     "top-right",
	AnchorCenterLeft:   "center-left",
	AnchorCenter:       "center",
	AnchorCenterRight:  "center-right",
	AnchorBottomLeft:   "bottom-left",
	AnchorBottomCenter: "bottom-center",
	AnchorBottomRight:  "bottom-right",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "unknown"
}

// ParseAnchor returns the anchor with the given String name.
func ParseAnchor(name string) (Anchor, bool) {
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), true
		}
	}
	return AnchorTopLeft, false
}

// AnchorPosition returns the overlay origin that places an overlay of the
// given size at anchor inside a host of hostSize, margin units from the
// nearest edges. The origin is the top-left corner under YDown and the
// bottom-left corner under YUp.
func AnchorPosition(anchor Anchor, size, hostSize Size, margin float64, axis YAxis) Vec2 {
	col := int(anchor) % 3
	row := int(anchor) / 3

	var x float64
	switch col {
	case 0:
		x = margin
	case 1:
		x = (hostSize.Width - size.Width) / 2
	default:
		x = hostSize.Width - size.Width - margin
	}

	// Distances from the host's reading-order top edge.
	var y float64
	switch row {
	case 0:
		y = margin
	case 1:
		y = (hostSize.Height - size.Height) / 2
	default:
		y = hostSize.Height - size.Height - margin
	}
	if axis == YUp {
		y = hostSize.Height - size.Height - y
	}
	return Vec2{X: x, Y: y}
}
