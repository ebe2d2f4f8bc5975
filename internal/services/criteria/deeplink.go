package criteria

import (
	"net/url"
	"strings"

	"classifieds/internal/domain"
)

// DeepLinkTypeKey — ключ query-параметра с типом недвижимости.
const DeepLinkTypeKey = "type"

// DeepLink отражает критерии в query-строку. Переносится только первый
// выбранный тип недвижимости, остальные измерения теряются.
func DeepLink(c domain.FilterCriteria) url.Values {
	params := url.Values{}
	if len(c.PropertyTypes) > 0 {
		params.Set(DeepLinkTypeKey, c.PropertyTypes[0].String())
	}
	return params
}

// FromDeepLink восстанавливает из query-строки только тип недвижимости.
// Неизвестный или пустой тип даёт пустой патч.
func FromDeepLink(v url.Values) Patch {
	raw := strings.TrimSpace(v.Get(DeepLinkTypeKey))
	if raw == "" {
		return Patch{}
	}
	t := domain.PropertyType(strings.ToLower(raw))
	if !t.Valid() {
		return Patch{}
	}
	types := []domain.PropertyType{t}
	return Patch{PropertyTypes: &types}
}
