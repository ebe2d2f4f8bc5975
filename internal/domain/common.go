package domain

const (
	// DefaultPageSize кол-во записей на странице по умолчанию
	DefaultPageSize = 20
	// MaxPageSize максимальное кол-во записей на странице
	MaxPageSize = 500
)

// Language — язык локализованных названий.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageKZ Language = "kz"
)

// ParseLanguage возвращает язык, по умолчанию русский.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageKZ {
		return LanguageKZ
	}
	return LanguageRU
}

// LocalizedName — название на русском и казахском.
type LocalizedName struct {
	RU string `json:"ru" yaml:"ru"`
	KZ string `json:"kz" yaml:"kz"`
}

// In возвращает название на выбранном языке.
func (n LocalizedName) In(lang Language) string {
	if lang == LanguageKZ {
		return n.KZ
	}
	return n.RU
}

// PaginatedResult результат пагинированного запроса
type PaginatedResult[T any] struct {
	Items      []T
	TotalCount int32
	HasMore    bool
}

// Pager постраничная нарезка выдачи
type Pager struct {
	page, perPage int32
}

func NewPager(page int32, perPage int32) *Pager {
	return &Pager{page: page, perPage: perPage}
}

// Limit вернет размер страницы
func (p *Pager) Limit() int64 {
	if p == nil || p.perPage <= 0 {
		return DefaultPageSize
	}

	return min(MaxPageSize, int64(p.perPage))
}

// Offset вернет смещение первой записи страницы
func (p *Pager) Offset() int64 {
	if p == nil || p.page <= 1 {
		return 0
	}
	return int64(p.page-1) * p.Limit()
}

// Paginate вырезает страницу из уже отфильтрованной выдачи.
// nil-пейджер возвращает выдачу целиком.
func Paginate[T any](items []T, p *Pager) PaginatedResult[T] {
	total := int32(len(items))
	if p == nil {
		return PaginatedResult[T]{Items: items, TotalCount: total}
	}

	offset := p.Offset()
	if offset >= int64(len(items)) {
		return PaginatedResult[T]{Items: []T{}, TotalCount: total}
	}
	end := min(offset+p.Limit(), int64(len(items)))

	return PaginatedResult[T]{
		Items:      items[offset:end],
		TotalCount: total,
		HasMore:    end < int64(len(items)),
	}
}
