// Package similarity computes the descendant-set coefficients (Dice,
// Jaccard, Chawathe, Overlap) the bottom-up matcher ranks candidates with.
package similarity

import "github.com/fitz35/hyperast-go/mapping"

// CommonDescendants counts source descendants (pre-sorted ascending IdD)
// that are mapped to a destination descendant (also pre-sorted ascending).
// It runs in O(|src|+|dst|) via a bitmap over [min(dst), max(dst)].
func CommonDescendants(src, dst []uint32, ms *mapping.MonoMappingStore) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}
	minD, maxD := dst[0], dst[len(dst)-1]
	present := make([]bool, maxD-minD+1)
	for _, d := range dst {
		present[d-minD] = true
	}

	common := 0
	for _, s := range src {
		d, ok := ms.GetDst(s)
		if !ok || d < minD || d > maxD {
			continue
		}
		if present[d-minD] {
			common++
		}
	}
	return common
}

// Dice returns 2*common/(lenSrc+lenDst), or 0 if that denominator is 0.
func Dice(common, lenSrc, lenDst int) float64 {
	denom := lenSrc + lenDst
	if denom == 0 {
		return 0
	}
	return 2 * float64(common) / float64(denom)
}

// Jaccard returns common/(lenSrc+lenDst-common), or 0 by convention when
// that denominator is not positive (including the ∅,∅ case).
func Jaccard(common, lenSrc, lenDst int) float64 {
	denom := lenSrc + lenDst - common
	if denom <= 0 {
		return 0
	}
	return float64(common) / float64(denom)
}

// Chawathe returns common/max(lenSrc,lenDst), or 0 if both are 0.
func Chawathe(common, lenSrc, lenDst int) float64 {
	denom := lenSrc
	if lenDst > denom {
		denom = lenDst
	}
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}

// Overlap returns common/min(lenSrc,lenDst), or 0 if either is 0.
func Overlap(common, lenSrc, lenDst int) float64 {
	denom := lenSrc
	if lenDst < denom {
		denom = lenDst
	}
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}
