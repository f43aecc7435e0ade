package dheader

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func flatten(pairs []Pair) []int32 {
	return lo.FlatMap(
		pairs,
		func(pair Pair, _ int) []int32 {
			return []int32{int32(pair.Offset), pair.Size}
		},
	)
}

// createPairs builds n contiguous segments. Sizes are distinct multiples of
// 8 strictly between first and 1.5*first, which keeps every wrong candidate
// from ever summing to a value left in the pool.
func createPairs(r *rand.Rand, n int, withGap bool) []Pair {
	first := int64(8 * (128 + r.Intn(1024)))
	slots := lo.Times(int(first/16)-1, func(i int) int64 { return first + 8*int64(i+1) })
	r.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	gapAt := -1
	if withGap && n > 1 {
		gapAt = r.Intn(n - 1)
	}

	pairs := make([]Pair, 0, n)
	offset := first
	for i := 0; i < n; i++ {
		size := slots[i]
		pairs = append(pairs, Pair{Offset: uint32(offset), Size: int32(size)})
		offset += size
		if i == gapAt {
			offset += DefaultGap
		}
	}
	return pairs
}

func TestUnshuffleFrom_Scenario(t *testing.T) {
	pool := []int32{0, 100, 50, 150, 30, 180}

	pairs, err := UnshuffleFrom(pool, 100, DefaultFormat(), silentLogger())
	require.NoError(t, err)
	assert.Equal(
		t,
		[]Pair{
			{Offset: 100, Size: 50},
			{Offset: 150, Size: 30},
			{Offset: 180, Size: 0},
		},
		pairs,
	)
}

func TestUnshuffle_AutoSeedTooSmall(t *testing.T) {
	// 30 is a size, but as the smallest non-zero value it becomes the seed
	pool := []int32{0, 100, 50, 150, 30, 180}

	_, err := Unshuffle(pool, DefaultFormat(), silentLogger())
	var failure *ErrReconstructionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, int64(180), failure.Offset)
	assert.Equal(t, []int64{0, 50, 100}, failure.Remaining)
}

func TestUnshuffleFrom_SeedNotInPool(t *testing.T) {
	_, err := UnshuffleFrom([]int32{100, 50}, 64, DefaultFormat(), silentLogger())
	var failure *ErrReconstructionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, int64(64), failure.Offset)
}

func TestUnshuffle_Gap(t *testing.T) {
	// 1000+1200+4 == 2204
	pool := []int32{2204, 1500, 1100, 1000, 3304, 1200}

	pairs, err := Unshuffle(pool, DefaultFormat(), silentLogger())
	require.NoError(t, err)
	assert.Equal(
		t,
		[]Pair{
			{Offset: 1000, Size: 1200},
			{Offset: 2204, Size: 1100},
			{Offset: 3304, Size: 1500},
		},
		pairs,
	)
}

func TestUnshuffle_Duplicates(t *testing.T) {
	// the empty segment shares its offset with the next one, and two
	// segments share a size
	expected := []Pair{
		{Offset: 256, Size: 0},
		{Offset: 256, Size: 300},
		{Offset: 556, Size: 300},
		{Offset: 856, Size: 1024},
	}
	pool := flatten(expected)
	rand.New(rand.NewSource(7)).Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	pairs, err := Unshuffle(pool, DefaultFormat(), silentLogger())
	require.NoError(t, err)
	assert.Equal(t, expected, pairs)
}

func TestUnshuffle_SinglePair(t *testing.T) {
	pairs, err := Unshuffle([]int32{4096, 512}, DefaultFormat(), silentLogger())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Offset: 512, Size: 4096}}, pairs)
}

func TestUnshuffle_Permutations(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for i := 0; i < 500; i++ {
		n := 1 + r.Intn(40)
		expected := createPairs(r, n, i%2 == 0)
		pool := flatten(expected)
		r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		pairs, err := Unshuffle(pool, DefaultFormat(), silentLogger())
		require.NoErrorf(t, err, "iteration %d", i)
		require.Equalf(t, expected, pairs, "iteration %d", i)
		require.Truef(
			t,
			lo.IsSortedByKey(pairs, func(pair Pair) uint32 { return pair.Offset }),
			"iteration %d", i,
		)
	}
}

func TestUnshuffle_Failure(t *testing.T) {
	pool := []int32{100, 7, 13, 1000}

	_, err := Unshuffle(pool, DefaultFormat(), silentLogger())
	var failure *ErrReconstructionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, int64(7), failure.Offset)
	assert.Equal(t, []int64{13, 100, 1000}, failure.Remaining)
}

func TestUnshuffle_NoSeed(t *testing.T) {
	_, err := Unshuffle([]int32{0, 0}, DefaultFormat(), silentLogger())
	var failure *ErrReconstructionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, []int64{0, 0}, failure.Remaining)
}

func TestUnshuffle_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := UnshuffleFrom([]int32{0, 100, 50, 150, 30, 180}, 100, DefaultFormat(), logger)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, "seeded first offset", entries[0].Message)
	assert.Equal(t, int64(100), entries[1].Data["offset"])
	assert.Equal(t, int64(150), entries[1].Data["next_offset"])
	assert.Equal(t, "found last pair", entries[3].Message)
}
