package domain

import (
	"strings"
	"time"
)

// Listing — доменная сущность объявления.
type Listing struct {
	ID          string
	Title       string
	Description string
	Address     string
	CategoryID  string
	Images      []string
	Price       float64
	// DiscountPrice — цена, по которой работают фильтр и сортировка (>= 0)
	DiscountPrice float64

	// PropertyType задан только у объявлений недвижимости
	PropertyType   *PropertyType
	Area           *float64
	Floor          *int
	BuildingType   *BuildingType
	RenovationType *RenovationType
	Bathroom       *BathroomType

	// Административная иерархия: регион ⊃ город ⊃ район ⊃ микрорайон
	RegionID        *string
	CityID          *string
	DistrictID      *string
	MicrodistrictID *string

	CreatedAt  time.Time
	IsFeatured bool
}

// IsProperty сообщает, относится ли объявление к недвижимости.
func (l Listing) IsProperty() bool {
	return l.PropertyType != nil
}

// AreaOrZero возвращает площадь или 0, если она не указана.
func (l Listing) AreaOrZero() float64 {
	if l.Area == nil {
		return 0
	}
	return *l.Area
}

// PropertyType — тип недвижимости.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"  // Квартира
	PropertyTypeHouse      PropertyType = "house"      // Дом
	PropertyTypeRoom       PropertyType = "room"       // Комната
	PropertyTypeCommercial PropertyType = "commercial" // Коммерческая недвижимость
	PropertyTypeLand       PropertyType = "land"       // Земельный участок
	PropertyTypeGarage     PropertyType = "garage"     // Гараж
)

var propertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeRoom,
	PropertyTypeCommercial,
	PropertyTypeLand,
	PropertyTypeGarage,
}

func (t PropertyType) String() string {
	return string(t)
}

// Valid проверяет, что значение входит в перечисление.
func (t PropertyType) Valid() bool {
	return containsEnum(propertyTypes, t)
}

// PropertyTypes возвращает все известные типы недвижимости.
func PropertyTypes() []PropertyType {
	return append([]PropertyType(nil), propertyTypes...)
}

// BuildingType — материал/тип дома.
type BuildingType string

const (
	BuildingTypeBrick      BuildingType = "brick"
	BuildingTypePanel      BuildingType = "panel"
	BuildingTypeMonolithic BuildingType = "monolithic"
	BuildingTypeWood       BuildingType = "wood"
	BuildingTypeBlock      BuildingType = "block"
)

var buildingTypes = []BuildingType{
	BuildingTypeBrick, BuildingTypePanel, BuildingTypeMonolithic, BuildingTypeWood, BuildingTypeBlock,
}

func (t BuildingType) String() string {
	return string(t)
}

func (t BuildingType) Valid() bool {
	return containsEnum(buildingTypes, t)
}

// RenovationType — состояние ремонта.
type RenovationType string

const (
	RenovationDesigner    RenovationType = "designer"
	RenovationEuro        RenovationType = "euro"
	RenovationCosmetic    RenovationType = "cosmetic"
	RenovationNeedsRepair RenovationType = "needs_repair"
	RenovationNone        RenovationType = "none"
)

var renovationTypes = []RenovationType{
	RenovationDesigner, RenovationEuro, RenovationCosmetic, RenovationNeedsRepair, RenovationNone,
}

func (t RenovationType) String() string {
	return string(t)
}

func (t RenovationType) Valid() bool {
	return containsEnum(renovationTypes, t)
}

// BathroomType — тип санузла.
type BathroomType string

const (
	BathroomCombined BathroomType = "combined"
	BathroomSeparate BathroomType = "separate"
	BathroomMultiple BathroomType = "multiple"
)

var bathroomTypes = []BathroomType{BathroomCombined, BathroomSeparate, BathroomMultiple}

func (t BathroomType) String() string {
	return string(t)
}

func (t BathroomType) Valid() bool {
	return containsEnum(bathroomTypes, t)
}

// SortOption — режим сортировки выдачи.
type SortOption string

const (
	SortNone      SortOption = ""
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortAreaAsc   SortOption = "area_asc"
	SortAreaDesc  SortOption = "area_desc"
)

func (s SortOption) String() string {
	return string(s)
}

// ParseSortOption разбирает режим сортировки без учёта регистра.
// Неизвестное значение означает «без сортировки».
func ParseSortOption(s string) SortOption {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case SortPriceAsc, SortPriceDesc, SortAreaAsc, SortAreaDesc:
		return opt
	default:
		return SortNone
	}
}

func containsEnum[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}
