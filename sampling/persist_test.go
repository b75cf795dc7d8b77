package sampling_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsub/sampling"
)

// TestRoundTrip_InMemory is the round-trip property from the persistence
// contract: snapshot → load into a fresh set of the same (M, m) reproduces
// coordinates and values exactly.
func TestRoundTrip_InMemory(t *testing.T) {
	src, err := sampling.New(8, 3, sampling.WithSeed(23))
	require.NoError(t, err)
	require.NoError(t, src.Generate(false))
	require.NoError(t, src.AssignValues(func(x []float64) float64 { return x[0] + x[1]*x[2] }))

	rec := src.Snapshot()

	dst, err := sampling.New(8, 3)
	require.NoError(t, err)
	require.NoError(t, dst.Load(rec, false))

	for i := 0; i < src.Len(); i++ {
		a, err := src.Extract(i)
		require.NoError(t, err)
		b, err := dst.Extract(i)
		require.NoError(t, err)
		assert.Equal(t, a, b, "row %d", i)
	}
	va, err := src.Values()
	require.NoError(t, err)
	vb, err := dst.Values()
	require.NoError(t, err)
	assert.Equal(t, va, vb)
}

// TestLoad_ShapeMismatch ensures loading into a set of different (M, m)
// fails with ErrShape and leaves the target untouched.
func TestLoad_ShapeMismatch(t *testing.T) {
	src, err := sampling.New(4, 2, sampling.WithSeed(29))
	require.NoError(t, err)
	require.NoError(t, src.Generate(false))
	rec := src.Snapshot()

	wrongM, err := sampling.New(5, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, wrongM.Load(rec, false), sampling.ErrShape)
	assert.False(t, wrongM.Populated())

	wrongDim, err := sampling.New(4, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, wrongDim.Load(rec, false), sampling.ErrShape)

	badValues := src.Snapshot()
	badValues.Values = []float64{1, 2} // length != M
	fresh, err := sampling.New(4, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, fresh.Load(badValues, false), sampling.ErrShape)
}

// TestLoad_OverwriteGuard mirrors Generate's guard for loaded data.
func TestLoad_OverwriteGuard(t *testing.T) {
	src, err := sampling.New(3, 2, sampling.WithSeed(31))
	require.NoError(t, err)
	require.NoError(t, src.Generate(false))
	rec := src.Snapshot()

	dst, err := sampling.New(3, 2, sampling.WithSeed(37))
	require.NoError(t, err)
	require.NoError(t, dst.Generate(false))

	assert.ErrorIs(t, dst.Load(rec, false), sampling.ErrSamplesExist)
	require.NoError(t, dst.Load(rec, true))

	a, err := src.Extract(0)
	require.NoError(t, err)
	b, err := dst.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestLoad_ChecksumMismatch verifies the integrity check rejects a record
// whose coordinates were tampered with after snapshotting.
func TestLoad_ChecksumMismatch(t *testing.T) {
	src, err := sampling.New(3, 2, sampling.WithSeed(41))
	require.NoError(t, err)
	require.NoError(t, src.Generate(false))

	rec := src.Snapshot()
	rec.Samples[1][0] += 1e-9 // corrupt payload, keep stale checksum

	dst, err := sampling.New(3, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.Load(rec, false), sampling.ErrChecksum)

	rec.Checksum = 0 // explicit opt-out skips verification
	require.NoError(t, dst.Load(rec, false))
}

// TestFileRoundTrip covers WriteRecord/ReadRecord for both plain JSON and
// zstd-compressed archives.
func TestFileRoundTrip(t *testing.T) {
	for _, name := range []string{"set.json", "set.json.zst"} {
		t.Run(name, func(t *testing.T) {
			set, err := sampling.New(6, 2, sampling.WithSeed(43))
			require.NoError(t, err)
			require.NoError(t, set.Generate(false))
			require.NoError(t, set.AssignValues(func(x []float64) float64 { return x[0] * x[1] }))

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, set.Save(path))

			rec, err := sampling.ReadRecord(path)
			require.NoError(t, err)

			dst, err := sampling.New(6, 2)
			require.NoError(t, err)
			require.NoError(t, dst.Load(rec, false))

			for i := 0; i < set.Len(); i++ {
				a, err := set.Extract(i)
				require.NoError(t, err)
				b, err := dst.Extract(i)
				require.NoError(t, err)
				assert.Equal(t, a, b)
			}
		})
	}
}
