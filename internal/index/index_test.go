package index

import (
	"testing"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func TestIndex_Upsert(t *testing.T) {
	idx := New(nopLogger{}, 2)

	require.NoError(t, idx.Upsert("B-2", []float32{0, 1}))
	require.NoError(t, idx.Upsert("A-1", []float32{1, 0}))

	snap := idx.Snapshot()
	assert.Equal(t, 2, snap.Size())

	// записи отсортированы по артикулу
	assert.Equal(t, "A-1", snap.Entries()[0].ProductCode)
	assert.Equal(t, "B-2", snap.Entries()[1].ProductCode)

	// повторный upsert заменяет вектор, а не добавляет запись
	require.NoError(t, idx.Upsert("A-1", []float32{0.5, 0.5}))

	snap = idx.Snapshot()
	assert.Equal(t, 2, snap.Size())

	vec, ok := snap.Vector("A-1")
	require.True(t, ok)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
}

func TestIndex_UpsertValidation(t *testing.T) {
	idx := New(nopLogger{}, 2)

	assert.ErrorIs(t, idx.Upsert("A", []float32{1, 2, 3}), e.ErrDimensionMismatch)
	assert.ErrorIs(t, idx.Upsert("A", []float32{0, 0}), e.ErrDegenerateEmbedding)
	assert.Equal(t, 0, idx.Snapshot().Size())
}

func TestIndex_SnapshotIsolation(t *testing.T) {
	idx := New(nopLogger{}, 2)
	require.NoError(t, idx.Upsert("A", []float32{1, 0}))

	old := idx.Snapshot()
	require.NoError(t, idx.Upsert("B", []float32{0, 1}))

	// начатый до записи снапшот не видит новую запись
	assert.Equal(t, 1, old.Size())
	assert.Equal(t, 2, idx.Snapshot().Size())
}

func TestIndex_Replace(t *testing.T) {
	idx := New(nopLogger{}, 2)
	require.NoError(t, idx.Upsert("OLD", []float32{1, 0}))

	b := NewBuilder(2)
	require.NoError(t, b.Add("NEW-1", []float32{0, 1}))
	require.NoError(t, b.Add("NEW-2", []float32{1, 1}))

	require.NoError(t, idx.Replace(b.Snapshot()))

	snap := idx.Snapshot()
	assert.Equal(t, 2, snap.Size())

	_, ok := snap.Vector("OLD")
	assert.False(t, ok)
}

func TestIndex_ReplaceDimMismatch(t *testing.T) {
	idx := New(nopLogger{}, 2)

	b := NewBuilder(3)
	require.NoError(t, b.Add("A", []float32{1, 0, 0}))

	assert.ErrorIs(t, idx.Replace(b.Snapshot()), e.ErrDimensionMismatch)
}

func TestBuilder_LastWins(t *testing.T) {
	b := NewBuilder(2)

	require.NoError(t, b.Add("A", []float32{1, 0}))
	require.NoError(t, b.Add("A", []float32{0, 1}))
	assert.Equal(t, 1, b.Len())

	vec, ok := b.Snapshot().Vector("A")
	require.True(t, ok)
	assert.Equal(t, []float32{0, 1}, vec)
}

func TestCodec_RoundTrip(t *testing.T) {
	b := NewBuilder(3)
	require.NoError(t, b.Add("SKU-100", []float32{0.1, -0.2, 0.97}))
	require.NoError(t, b.Add("SKU-007", []float32{1, 0, 0}))
	require.NoError(t, b.Add("SKU-042", []float32{0, 0.6, 0.8}))

	snap := b.Snapshot()
	encoded := Encode(snap)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, snap.Dim(), decoded.Dim())
	assert.Equal(t, snap.Entries(), decoded.Entries())

	// повторная сериализация дает байт-в-байт тот же буфер
	assert.Equal(t, encoded, Encode(decoded))
}

func TestCodec_RoundTripEmpty(t *testing.T) {
	snap := NewBuilder(768).Snapshot()

	decoded, err := Decode(Encode(snap))
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Size())
	assert.Equal(t, 768, decoded.Dim())
}

func TestDecode_Corrupted(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "wrong magic", data: []byte("XXXX\x01\x00")},
		{name: "truncated header", data: []byte("VSIX\x01")},
		{name: "truncated body", data: func() []byte {
			b := NewBuilder(2)
			_ = b.Add("A", []float32{1, 0})
			enc := Encode(b.Snapshot())
			return enc[:len(enc)-3]
		}()},
		{name: "trailing garbage", data: append(Encode(NewBuilder(2).Snapshot()), 0xde, 0xad)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			assert.ErrorIs(t, err, e.ErrSnapshotCorrupted)
		})
	}
}
