package domain

// LabeledOption — значение фильтра с подписью.
type LabeledOption struct {
	ID    string
	Label LocalizedName
}

// PropertySegment — сегмент недвижимости (жилая/коммерческая).
type PropertySegment struct {
	ID    string
	Label LocalizedName
	Types []PropertyType
}

// PropertyFilterConfig — границы и справочники панели фильтров недвижимости.
type PropertyFilterConfig struct {
	AreaRangeMin  float64
	AreaRangeMax  float64
	FloorRangeMin int
	FloorRangeMax int
	DealTypes     []LabeledOption
	Segments      []PropertySegment
}

// DefaultPropertyFilterConfig возвращает конфигурацию панели фильтров.
func DefaultPropertyFilterConfig() PropertyFilterConfig {
	return PropertyFilterConfig{
		AreaRangeMin:  10,
		AreaRangeMax:  500,
		FloorRangeMin: 1,
		FloorRangeMax: 30,
		DealTypes: []LabeledOption{
			{ID: "sale", Label: LocalizedName{RU: "Продажа", KZ: "Сату"}},
			{ID: "rent", Label: LocalizedName{RU: "Аренда", KZ: "Жалға алу"}},
		},
		Segments: []PropertySegment{
			{
				ID:    "residential",
				Label: LocalizedName{RU: "Жилая недвижимость", KZ: "Тұрғын үй"},
				Types: []PropertyType{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeRoom},
			},
			{
				ID:    "commercial",
				Label: LocalizedName{RU: "Коммерческая недвижимость", KZ: "Коммерциялық жылжымайтын мүлік"},
				Types: []PropertyType{PropertyTypeCommercial, PropertyTypeLand, PropertyTypeGarage},
			},
		},
	}
}
