// Package index хранит эмбеддинги каталога в памяти. Читатели получают
// неизменяемый Snapshot через атомарный указатель и никогда не блокируются
// писателями; любое обновление публикует целиком новый снапшот.
package index

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Snapshot — неизменяемое состояние индекса. Записи отсортированы по артикулу,
// поэтому обход снапшота детерминирован.
type Snapshot struct {
	dim     int
	entries []domain.CatalogEntry
	byCode  map[string]int
}

func (s *Snapshot) Size() int { return len(s.entries) }

func (s *Snapshot) Dim() int { return s.dim }

// Entries возвращает записи снапшота. Слайс принадлежит снапшоту,
// изменять его нельзя.
func (s *Snapshot) Entries() []domain.CatalogEntry { return s.entries }

func (s *Snapshot) Vector(productCode string) ([]float32, bool) {
	i, ok := s.byCode[productCode]
	if !ok {
		return nil, false
	}

	return s.entries[i].Vector, true
}

func newSnapshot(dim int, entries []domain.CatalogEntry) *Snapshot {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProductCode < entries[j].ProductCode
	})

	byCode := make(map[string]int, len(entries))
	for i := range entries {
		byCode[entries[i].ProductCode] = i
	}

	return &Snapshot{dim: dim, entries: entries, byCode: byCode}
}

// Index публикует снапшоты эмбеддингов каталога.
// Чтение lock-free, запись сериализуется мьютексом.
type Index struct {
	log logger.Logger
	dim int

	mu   sync.Mutex // защищает последовательность публикаций
	snap atomic.Pointer[Snapshot]
}

func New(log logger.Logger, dim int) *Index {
	idx := &Index{log: log, dim: dim}
	idx.snap.Store(newSnapshot(dim, nil))

	return idx
}

func (idx *Index) Dim() int { return idx.dim }

// Snapshot возвращает текущее опубликованное состояние.
func (idx *Index) Snapshot() *Snapshot {
	return idx.snap.Load()
}

// Replace атомарно подменяет весь индекс. Запросы, начатые до подмены,
// дочитывают старый снапшот.
func (idx *Index) Replace(snap *Snapshot) error {
	if snap.dim != idx.dim {
		return e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	old := idx.snap.Swap(snap)
	idx.log.Infof("index: snapshot replaced, %d -> %d entries", old.Size(), snap.Size())

	return nil
}

// Upsert добавляет или заменяет запись по артикулу copy-on-write публикацией.
func (idx *Index) Upsert(productCode string, vector []float32) error {
	if len(vector) != idx.dim {
		return e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}
	if isZeroNorm(vector) {
		return e.Wrap(whereami.WhereAmI(), e.ErrDegenerateEmbedding)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	cur := idx.snap.Load()
	entries := make([]domain.CatalogEntry, 0, len(cur.entries)+1)
	for i := range cur.entries {
		if cur.entries[i].ProductCode == productCode {
			continue
		}
		entries = append(entries, cur.entries[i])
	}
	entries = append(entries, *domain.NewCatalogEntry(productCode, vector))

	idx.snap.Store(newSnapshot(idx.dim, entries))

	return nil
}

// Builder накапливает записи для полной пересборки индекса.
// Повторный артикул перезаписывает предыдущий вектор (последний выигрывает).
type Builder struct {
	dim     int
	vectors map[string][]float32
}

func NewBuilder(dim int) *Builder {
	return &Builder{dim: dim, vectors: make(map[string][]float32)}
}

func (b *Builder) Add(productCode string, vector []float32) error {
	if len(vector) != b.dim {
		return e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}
	if isZeroNorm(vector) {
		return e.Wrap(whereami.WhereAmI(), e.ErrDegenerateEmbedding)
	}

	b.vectors[productCode] = vector

	return nil
}

func (b *Builder) Len() int { return len(b.vectors) }

func (b *Builder) Snapshot() *Snapshot {
	entries := make([]domain.CatalogEntry, 0, len(b.vectors))
	for code, vec := range b.vectors {
		entries = append(entries, *domain.NewCatalogEntry(code, vec))
	}

	return newSnapshot(b.dim, entries)
}

func isZeroNorm(vector []float32) bool {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}

	return math.Sqrt(sum) == 0
}
