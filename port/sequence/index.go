package sequence

// Indexing is the policy used to turn a caller supplied index into a zero based position.
type Indexing string

const (
	// LiteralIndexing keeps the historical negative index rule:
	// a negative index is only accepted when index*index <= length,
	// and it is normalised by flipping its sign, not by counting from the end.
	//
	//	[a b c d e] -2 -> 2 (c)
	//	[a b c]     -2 -> out of range
	LiteralIndexing Indexing = "literal"
	// FromEndIndexing counts negative indexes from the end of the sequence.
	//
	//	[a b c d e] -1 -> 4 (e)
	//	[a b c d e] -5 -> 0 (a)
	FromEndIndexing Indexing = "from-end"
)

// DefaultIndexing is used when no Indexing is configured.
const DefaultIndexing = LiteralIndexing

// Normalize returns the zero based position of index in a sequence with the given length.
// Whatever the policy is, a successful result is always in the [0, length) range.
func (ix Indexing) Normalize(index, length int) (int, error) {
	var (
		pos int
		ok  bool
	)
	switch ix {
	case FromEndIndexing:
		pos, ok = normalizeFromEnd(index, length)
	default:
		pos, ok = normalizeLiteral(index, length)
	}
	if !ok || pos < 0 || length <= pos {
		return 0, ErrOutOfRange.F("index %d with length %d (%s indexing)", index, length, ix.orDefault())
	}
	return pos, nil
}

func (ix Indexing) orDefault() Indexing {
	if ix == "" {
		return DefaultIndexing
	}
	return ix
}

func normalizeLiteral(index, length int) (int, bool) {
	if 0 < index && length <= index {
		return 0, false
	}
	if index < 0 && length < index*index {
		return 0, false
	}
	if index < 0 {
		return index * -1, true
	}
	return index, true
}

func normalizeFromEnd(index, length int) (int, bool) {
	if index < 0 {
		index += length
	}
	return index, 0 <= index && index < length
}

// Normalize normalises the index with the DefaultIndexing.
func Normalize(index, length int) (int, error) {
	return DefaultIndexing.Normalize(index, length)
}
