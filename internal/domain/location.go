package domain

import (
	"regexp"
	"strings"
)

// District — район из справочника страницы недвижимости.
type District struct {
	ID   string
	Name LocalizedName
}

// KnownDistricts — справочник районов по умолчанию.
var KnownDistricts = []District{
	{ID: "almaty-district", Name: LocalizedName{RU: "Алмалинский район", KZ: "Алмалы ауданы"}},
	{ID: "bostandyk-district", Name: LocalizedName{RU: "Бостандыкский район", KZ: "Бостандық ауданы"}},
	{ID: "alatau-district", Name: LocalizedName{RU: "Алатауский район", KZ: "Алатау ауданы"}},
}

var (
	nonIDChars  = regexp.MustCompile(`[^a-z0-9-]+`)
	dashesChain = regexp.MustCompile(`-{2,}`)
)

// NormalizeLocationID приводит идентификатор региона/города/района к виду slug:
// нижний регистр, пробелы и подчёркивания заменены дефисами.
func NormalizeLocationID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.NewReplacer(" ", "-", "_", "-").Replace(id)
	id = nonIDChars.ReplaceAllString(id, "")
	id = dashesChain.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}

// FindDistrict ищет район в справочнике с учётом нормализации.
// Возвращает nil, если район не найден.
func FindDistrict(id string) *District {
	normalized := NormalizeLocationID(id)
	if normalized == "" {
		return nil
	}
	for i := range KnownDistricts {
		if KnownDistricts[i].ID == normalized {
			d := KnownDistricts[i]
			return &d
		}
	}
	return nil
}
