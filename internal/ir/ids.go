package ir

// BlockID indexes a basic block within one function.
type BlockID int32

// NoBlockID is the invalid block sentinel.
const NoBlockID BlockID = -1

// IsValid reports whether the ID refers to a block.
func (id BlockID) IsValid() bool { return id >= 0 }
