package instructions

/*

Software Interrupt (SWI)

-----------------------------------------------------------------
|31  28|27  24|23                                              0|
-----------------------------------------------------------------
| Cond | 1111 |       Comment field (Ignored by CPU)            |
-----------------------------------------------------------------
*/

const (
	Template_SWI uint32 = 0xEF000000

	SWICommentMask uint32 = 0x00FFFFFF
	SWICommentBits        = 24
)

// Software interrupt. The comment is ignored by the CPU, system call handlers usually read it
// back from the instruction to select the call
func SWI(comment uint32) Word {
	return Word(Template_SWI | comment&SWICommentMask)
}
