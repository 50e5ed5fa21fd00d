// Package mcdata holds the legacy identifier space shared by the remapping
// tables and the packet translator.
//
// A block state is the composite index of a block id and its data value
// (metadata nibble): id*BlockDataMax + data. Every caller derives it through
// BlockState so a pair and its index stay interchangeable.
package mcdata

const (
	// BlockIDMax is the number of legacy block ids.
	BlockIDMax = 4096
	// BlockDataMax is the number of data values per block id.
	BlockDataMax = 16
	// BlockStateMax is the size of the composite block state space.
	BlockStateMax = BlockIDMax * BlockDataMax
)

// BlockState returns the composite index of a block id and data value.
func BlockState(id, data int) int {
	return id*BlockDataMax + data
}

// SplitBlockState is the inverse of BlockState.
func SplitBlockState(state int) (id, data int) {
	return state / BlockDataMax, state % BlockDataMax
}

// ValidBlockState reports whether state lies inside the composite space.
func ValidBlockState(state int) bool {
	return state >= 0 && state < BlockStateMax
}
