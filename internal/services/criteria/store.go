package criteria

import (
	"sync"

	"classifieds/internal/domain"
)

// Reader — доступ на чтение к текущим критериям.
type Reader interface {
	Snapshot() domain.FilterCriteria
	ActiveCount() int
}

// Writer — доступ на изменение критериев.
type Writer interface {
	Set(p Patch) domain.FilterCriteria
	Reset()
}

// Patch — частичное обновление критериев. Применяются только заданные поля верхнего уровня.
// Пустое множество или пустая строка в идентификаторе сбрасывают соответствующее поле.
type Patch struct {
	PropertyTypes *[]domain.PropertyType

	PriceRange *domain.Range[float64]
	AreaRange  *domain.Range[float64]
	FloorRange *domain.Range[int]

	BuildingTypes   *[]domain.BuildingType
	RenovationTypes *[]domain.RenovationType
	BathroomTypes   *[]domain.BathroomType

	Districts       *[]string
	RegionID        *string
	CityID          *string
	MicrodistrictID *string

	SortBy *domain.SortOption
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply применяет патч к копии критериев c.
func (p Patch) Apply(c domain.FilterCriteria) domain.FilterCriteria {
	next := c.Clone()

	if p.PropertyTypes != nil {
		next.PropertyTypes = normalizeSet(*p.PropertyTypes)
	}
	if p.PriceRange != nil {
		next.PriceRange = p.PriceRange.Clone()
	}
	if p.AreaRange != nil {
		next.AreaRange = p.AreaRange.Clone()
	}
	if p.FloorRange != nil {
		next.FloorRange = p.FloorRange.Clone()
	}
	if p.BuildingTypes != nil {
		next.BuildingTypes = normalizeSet(*p.BuildingTypes)
	}
	if p.RenovationTypes != nil {
		next.RenovationTypes = normalizeSet(*p.RenovationTypes)
	}
	if p.BathroomTypes != nil {
		next.BathroomTypes = normalizeSet(*p.BathroomTypes)
	}
	if p.Districts != nil {
		next.Districts = normalizeSet(*p.Districts)
	}
	if p.RegionID != nil {
		next.RegionID = normalizeID(*p.RegionID)
	}
	if p.CityID != nil {
		next.CityID = normalizeID(*p.CityID)
	}
	if p.MicrodistrictID != nil {
		next.MicrodistrictID = normalizeID(*p.MicrodistrictID)
	}
	if p.SortBy != nil {
		next.SortBy = *p.SortBy
	}

	return next
}

// Store — владелец состояния критериев одной страницы недвижимости.
// Безопасен для конкурентного использования.
type Store struct {
	mu       sync.RWMutex
	criteria domain.FilterCriteria
}

var (
	_ Reader = (*Store)(nil)
	_ Writer = (*Store)(nil)
)

// NewStore создаёт хранилище с пустыми критериями.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Snapshot() domain.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.ActiveCount()
}

// Set сливает патч с текущими критериями и возвращает новый снимок.
func (s *Store) Set(p Patch) domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = p.Apply(s.criteria)
	return s.criteria.Clone()
}

// Reset возвращает критерии к значениям по умолчанию.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = domain.FilterCriteria{}
}

func normalizeSet[T any](set []T) []T {
	if len(set) == 0 {
		return nil
	}
	return append(make([]T, 0, len(set)), set...)
}

func normalizeID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
