package index

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
)

// Бинарный формат снапшота:
//
//	magic "VSIX" | version uint16 | dim uint32 | count uint32
//	затем count записей: codeLen uint16 | code | dim float32 little-endian
//
// Записи сериализуются в порядке сортировки по артикулу, поэтому
// Encode(Decode(b)) дает байт-в-байт исходный буфер.
var snapshotMagic = []byte("VSIX")

const codecVersion uint16 = 1

// Encode сериализует снапшот в бинарный вид.
func Encode(snap *Snapshot) []byte {
	var buf bytes.Buffer

	buf.Write(snapshotMagic)
	_ = binary.Write(&buf, binary.LittleEndian, codecVersion)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(snap.dim))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(snap.entries)))

	vecBuf := make([]byte, 4)
	for i := range snap.entries {
		entry := &snap.entries[i]

		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(entry.ProductCode)))
		buf.WriteString(entry.ProductCode)

		for _, v := range entry.Vector {
			binary.LittleEndian.PutUint32(vecBuf, math.Float32bits(v))
			buf.Write(vecBuf)
		}
	}

	return buf.Bytes()
}

// Decode восстанавливает снапшот из бинарного вида.
// Любое расхождение с форматом дает e.ErrSnapshotCorrupted.
func Decode(data []byte) (*Snapshot, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(snapshotMagic))
	if _, err := r.Read(magic); err != nil || !bytes.Equal(magic, snapshotMagic) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil || version != codecVersion {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
	}

	var dim, count uint32
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
	}

	entries := make([]domain.CatalogEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var codeLen uint16
		if err := binary.Read(r, binary.LittleEndian, &codeLen); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
		}

		code := make([]byte, codeLen)
		if _, err := io.ReadFull(r, code); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
		}

		vector := make([]float32, dim)
		if err := binary.Read(r, binary.LittleEndian, vector); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
		}

		entries = append(entries, *domain.NewCatalogEntry(string(code), vector))
	}

	if r.Len() != 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSnapshotCorrupted)
	}

	return newSnapshot(int(dim), entries), nil
}
