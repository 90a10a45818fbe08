package blake3

// accumulator folds a stream of completed chunk chaining values into the
// root of the implicit binary Merkle tree, without ever materializing the
// tree itself. Completed subtrees are kept in stack, ordered left to
// right by position in the input; chunkCount records how many chunks have
// been folded in so far and doubles as a merge counter the same way a
// binary counter's trailing zero bits tell you how many carries an
// increment produces.
type accumulator struct {
	key        [8]uint32
	flags      uint32
	stack      [maxStackDepth][8]uint32
	stackLen   int
	chunkCount uint64
}

func newAccumulator(key [8]uint32, flags uint32) accumulator {
	return accumulator{key: key, flags: flags}
}

func (a *accumulator) pop() [8]uint32 {
	a.stackLen--
	return a.stack[a.stackLen]
}

func (a *accumulator) pushCV(cv [8]uint32) {
	a.stack[a.stackLen] = cv
	a.stackLen++
}

// push merges a newly completed chunk's chaining value into the stack. As
// long as the total chunk count so far is even, the chunk just added
// completes a subtree with the one before it, so it is merged with the top
// of the stack and promoted; this repeats until the running total is odd,
// matching the reference algorithm's "merge while the low bit added a
// carry" structure.
func (a *accumulator) push(cv [8]uint32) {
	total := a.chunkCount + 1
	for total&1 == 0 {
		cv = chainingValue(parentNode(a.pop(), cv, a.key, a.flags))
		total >>= 1
	}
	a.pushCV(cv)
	a.chunkCount++
}

// rootNode folds the remaining stack entries, from most recently pushed to
// least, into the node representing the final chunk or subtree, and marks
// the result (or the lone node, if the input was a single chunk) with
// flagRoot.
func (a *accumulator) rootNode(final node) node {
	if a.stackLen == 0 {
		final.flags |= flagRoot
		return final
	}
	cv := chainingValue(final)
	for i := a.stackLen - 1; i > 0; i-- {
		cv = chainingValue(parentNode(a.stack[i], cv, a.key, a.flags))
	}
	root := parentNode(a.stack[0], cv, a.key, a.flags)
	root.flags |= flagRoot
	return root
}
