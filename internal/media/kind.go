package media

import "fmt"

// Kind is the classification of a single file. It is computed once per file
// and every processing branch switches on it.
type Kind int

const (
	KindPlain Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindPlain && k <= KindVideo
}
