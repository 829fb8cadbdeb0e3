package teenpatti

import "fmt"

// Category is a Teen Patti hand category, i.e., trail
type Category int

// Constants for category, strongest first. A lower value beats a higher value.
const (
	Trail Category = iota
	PureSequence
	Sequence
	Color
	Pair
	HighCard
)

// String returns the display name of a category
func (c Category) String() string {
	switch c {
	case Trail:
		return "Trail"
	case PureSequence:
		return "Pure Sequence"
	case Sequence:
		return "Sequence"
	case Color:
		return "Color"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}
