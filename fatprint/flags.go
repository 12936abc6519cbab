package fatprint

import "strings"

// ListFlags selects what List prints. Flags are independent bits; any
// combination is valid.
type ListFlags uint8

const (
	// ListHidden includes entries with the hidden attribute.
	ListHidden ListFlags = 1 << iota
	// ListDate prints each entry's modification timestamp.
	ListDate
	// ListSize prints each entry's size.
	ListSize
	// ListRecursive descends into sub-directories.
	ListRecursive
)

// IndentStep is the indentation added per level of recursion.
const IndentStep = 2

var flagNames = []struct {
	flag ListFlags
	name string
}{
	{ListHidden, "hidden"},
	{ListDate, "date"},
	{ListSize, "size"},
	{ListRecursive, "recursive"},
}

// String returns the set flags joined by "|", or "none".
func (f ListFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Has reports whether every bit in flag is set.
func (f ListFlags) Has(flag ListFlags) bool {
	return f&flag == flag
}
