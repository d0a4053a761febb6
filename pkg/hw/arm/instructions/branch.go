package instructions

/*
   Branch

-----------------------------------------------------------------
|31  28|27 25| 24 |23                                          0|
-----------------------------------------------------------------
| Cond | 101 | L  |                   Offset                    |
-----------------------------------------------------------------
L: 0 - Branch, 1 - Branch with Link (Save the return address in LR)
*/

const (
	Template_B  uint32 = 0xEA000000
	Template_BL uint32 = 0xEB000000

	BranchOffsetMask uint32 = 0x00FFFFFF
	BranchOffsetBits        = 24
)

// Branch. The offset is a signed count of words relative to the PC at the time the branch
// executes (the branch address plus 8 bytes), already resolved by the caller
func B(offset int32) Word {
	return Word(Template_B | uint32(offset)&BranchOffsetMask)
}

// Branch with link. Same offset semantics as [B]
func BL(offset int32) Word {
	return Word(Template_BL | uint32(offset)&BranchOffsetMask)
}

// Returns the branch offset of a branch from address pc to target, in words. Both addresses
// must be word aligned
func BranchOffset(pc uint32, target uint32) int32 {
	return (int32(target) - int32(pc) - 8) >> 2
}
