package dheader

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/ds"
	"unshuffle-metadata/logging"
)

// Unshuffle rebuilds the ordered offset/size pairs from a shuffled pool,
// starting from the smallest non-zero value.
func Unshuffle(pool []int32, format Format, logger logrus.FieldLogger) ([]Pair, error) {
	return UnshuffleFrom(pool, AutoSeed, format, logger)
}

// UnshuffleFrom rebuilds the ordered offset/size pairs from a shuffled pool,
// starting from seed, which must be one of the pool's values. AutoSeed picks
// the smallest non-zero value.
//
// Segments are laid out back to back, so for the pair at offset o the
// right size s is one where o+s (or o+s+Gap) is itself still in the pool as
// the next offset. Sizes are tried in ascending order and the first match
// wins. Once a single value is left it is the size of the last segment.
func UnshuffleFrom(pool []int32, seed int64, format Format, logger logrus.FieldLogger) ([]Pair, error) {
	remaining := ds.NewMultiset(
		lo.Map(
			pool,
			func(i int32, _ int) int64 {
				return int64(i)
			},
		),
	)

	offset, err := pickSeed(remaining, seed)
	if err != nil {
		return nil, err
	}
	remaining.Remove(offset)
	logger.WithField(logging.FieldOffset, offset).Debug("seeded first offset")

	pairs := make([]Pair, 0, len(pool)/2)
	for {
		if remaining.Len() == 1 {
			size := remaining.Values()[0]
			pairs = append(pairs, Pair{Offset: uint32(offset), Size: int32(size)})
			logger.WithFields(
				logrus.Fields{
					logging.FieldOffset: offset,
					logging.FieldSize:   size,
				},
			).Debug("found last pair")
			return pairs, nil
		}

		size, next, ok := findSize(offset, remaining, int64(format.Gap))
		if !ok {
			return nil, &ErrReconstructionFailure{
				Offset:    offset,
				Remaining: remaining.Values(),
				Reason:    "no size leads to a remaining offset",
			}
		}

		pairs = append(pairs, Pair{Offset: uint32(offset), Size: int32(size)})
		logger.WithFields(
			logrus.Fields{
				logging.FieldOffset:     offset,
				logging.FieldSize:       size,
				logging.FieldNextOffset: next,
			},
		).Debug("found pair")

		remaining.Remove(size)
		remaining.Remove(next)
		offset = next
	}
}

func pickSeed(remaining *ds.Multiset[int64], seed int64) (int64, error) {
	if seed != AutoSeed {
		if !remaining.Contains(seed) {
			return 0, &ErrReconstructionFailure{
				Offset:    seed,
				Remaining: remaining.Values(),
				Reason:    "seed is not in the pool",
			}
		}
		return seed, nil
	}

	offset, found := lo.Find(
		remaining.Distinct(),
		func(value int64) bool {
			return value != 0
		},
	)
	if !found {
		return 0, &ErrReconstructionFailure{
			Offset:    0,
			Remaining: remaining.Values(),
			Reason:    "no non-zero value to seed the first offset",
		}
	}
	return offset, nil
}

// findSize returns the smallest size in remaining for which offset+size or
// offset+size+gap is also in remaining, as a different element than the
// size itself.
func findSize(offset int64, remaining *ds.Multiset[int64], gap int64) (int64, int64, bool) {
	hasOther := func(size int64, next int64) bool {
		count := remaining.Count(next)
		if next == size {
			count--
		}
		return count > 0
	}

	for _, size := range remaining.Distinct() {
		if next := offset + size; hasOther(size, next) {
			return size, next, true
		}
		if next := offset + size + gap; hasOther(size, next) {
			return size, next, true
		}
	}
	return 0, 0, false
}
