package domain

import "strings"

// Category — категория верхнего уровня в меню.
type Category struct {
	ID            string        `yaml:"id"`
	Name          LocalizedName `yaml:"name"`
	Icon          string        `yaml:"icon"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// Subcategory — подкатегория первого уровня.
type Subcategory struct {
	ID    string        `yaml:"id"`
	Name  LocalizedName `yaml:"name"`
	Icon  string        `yaml:"icon"`
	Level int           `yaml:"level"`
}

// IconID — закрытое перечисление иконок, которые умеет рисовать клиент.
type IconID string

const (
	IconNone        IconID = ""
	IconHome        IconID = "home"
	IconBuilding    IconID = "building"
	IconCar         IconID = "car"
	IconBike        IconID = "bike"
	IconTruck       IconID = "truck"
	IconSmartphone  IconID = "smartphone"
	IconLaptop      IconID = "laptop"
	IconTv          IconID = "tv"
	IconShirt       IconID = "shirt"
	IconWatch       IconID = "watch"
	IconPawPrint    IconID = "paw-print"
	IconBaby        IconID = "baby"
	IconPill        IconID = "pill"
	IconSofa        IconID = "sofa"
	IconWrench      IconID = "wrench"
	IconBriefcase   IconID = "briefcase"
	IconDumbbell    IconID = "dumbbell"
	IconGift        IconID = "gift"
	IconMapPin      IconID = "map-pin"
	IconShoppingBag IconID = "shopping-bag"
)

// iconsByName — явная таблица имён иконок (в том числе в стиле lucide: "PawPrint").
var iconsByName = map[string]IconID{
	"home":        IconHome,
	"house":       IconHome,
	"building":    IconBuilding,
	"building2":   IconBuilding,
	"car":         IconCar,
	"bike":        IconBike,
	"truck":       IconTruck,
	"smartphone":  IconSmartphone,
	"laptop":      IconLaptop,
	"tv":          IconTv,
	"shirt":       IconShirt,
	"watch":       IconWatch,
	"pawprint":    IconPawPrint,
	"baby":        IconBaby,
	"pill":        IconPill,
	"sofa":        IconSofa,
	"wrench":      IconWrench,
	"briefcase":   IconBriefcase,
	"dumbbell":    IconDumbbell,
	"gift":        IconGift,
	"mappin":      IconMapPin,
	"shoppingbag": IconShoppingBag,
}

// ResolveIcon находит иконку по имени без учёта регистра, дефисов и подчёркиваний.
// Для неизвестного имени возвращает IconNone и false — клиент ничего не рисует.
func ResolveIcon(name string) (IconID, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	icon, ok := iconsByName[key]
	if !ok {
		return IconNone, false
	}
	return icon, true
}
