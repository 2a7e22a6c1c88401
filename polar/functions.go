package polar

import "math"

// Closed-form leaf decisions and the polar check/update LLR combines. All
// functions write into caller-owned destination buffers so decode passes
// reuse the per-node scratch without reallocating.

// hardDecision writes the per-position hard decision: bit i is 1 iff llr[i]
// is negative (positive LLR means confidence in bit 0).
func hardDecision(dst []uint8, llr []float64) {
	for i, v := range llr {
		if v < 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// singleParityCheck makes hard decisions and restores even parity by
// flipping the least reliable position.
func singleParityCheck(dst []uint8, llr []float64) {
	var parity uint8
	argMin := 0
	minAbs := math.Inf(1)
	for i, v := range llr {
		var b uint8
		if v < 0 {
			b = 1
		}
		dst[i] = b
		parity ^= b
		if a := math.Abs(v); a < minAbs {
			minAbs = a
			argMin = i
		}
	}
	dst[argMin] ^= parity
}

// repetition decides the single information bit from the summed reliability
// of all positions and fills dst with it.
func repetition(dst []uint8, llr []float64) {
	sum := 0.0
	for _, v := range llr {
		sum += v
	}
	var b uint8
	if sum < 0 {
		b = 1
	}
	for i := range dst {
		dst[i] = b
	}
}

// gRepetition decides a generalized repetition segment of maskSteps chunks.
// The codeword repeats the last chunk across all chunks, so chunk-position
// LLRs are summed stride-wise, the last chunk is decided by its recorded
// type and the result is tiled over the whole segment.
func gRepetition(dst []uint8, llr []float64, maskSteps int, lastChunk uint8) {
	chunk := len(llr) / maskSteps
	sums := make([]float64, chunk)
	for i := range sums {
		s := 0.0
		for j := i; j < len(llr); j += chunk {
			s += llr[j]
		}
		sums[i] = s
	}
	bits := make([]uint8, chunk)
	if lastChunk == 1 {
		hardDecision(bits, sums)
	} else {
		singleParityCheck(bits, sums)
	}
	for off := 0; off < len(dst); off += chunk {
		copy(dst[off:off+chunk], bits)
	}
}

// rgParity decides a relaxed generalized parity segment of maskSteps chunks.
// The frozen first chunk forces the XOR of all chunks to zero at every
// intra-chunk position, so each stride across chunks forms a single parity
// check code and is decided as such.
func rgParity(dst []uint8, llr []float64, maskSteps int) {
	chunk := len(llr) / maskSteps
	stride := make([]float64, maskSteps)
	bits := make([]uint8, maskSteps)
	for i := 0; i < chunk; i++ {
		for j := 0; j < maskSteps; j++ {
			stride[j] = llr[i+j*chunk]
		}
		singleParityCheck(bits, stride)
		for j := 0; j < maskSteps; j++ {
			dst[i+j*chunk] = bits[j]
		}
	}
}

// checkLLR is the min-sum check combine (the f function): dst[i] carries the
// LLR of the XOR of the pair (llr[i], llr[i+half]).
func checkLLR(dst, llr []float64) {
	half := len(llr) / 2
	for i := 0; i < half; i++ {
		a, b := llr[i], llr[i+half]
		m := math.Min(math.Abs(a), math.Abs(b))
		if (a < 0) != (b < 0) {
			m = -m
		}
		dst[i] = m
	}
}

// updateLLR is the update combine (the g function): given the decided left
// bits, dst[i] = llr[i+half] + (1-2*leftBits[i])*llr[i].
func updateLLR(dst, llr []float64, leftBits []uint8) {
	half := len(llr) / 2
	for i := 0; i < half; i++ {
		if leftBits[i] == 1 {
			dst[i] = llr[i+half] - llr[i]
		} else {
			dst[i] = llr[i+half] + llr[i]
		}
	}
}

// combineBits applies the polar butterfly rule to sibling decisions:
// dst = concat(left XOR right, right).
func combineBits(dst, left, right []uint8) {
	half := len(left)
	for i := 0; i < half; i++ {
		dst[i] = left[i] ^ right[i]
		dst[half+i] = right[i]
	}
}
