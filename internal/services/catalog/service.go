package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"classifieds/internal/domain"
	"classifieds/internal/lib/logger/sl"
	"classifieds/internal/lib/subcategory"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
)

//go:embed data/categories.yaml
var categoriesYAML []byte

const (
	CategoryProperty  = "property"
	CategoryTransport = "transport"
	CategoryKids      = "kids"
	CategoryPharmacy  = "pharmacy"
)

// remoteCatalogs — категории, подкатегории которых приходят из удалённого справочника.
var remoteCatalogs = map[string]struct {
	catalog subcategory.Catalog
	icon    domain.IconID
}{
	CategoryKids:     {catalog: subcategory.CatalogChildren, icon: domain.IconBaby},
	CategoryPharmacy: {catalog: subcategory.CatalogPharmacy, icon: domain.IconPill},
}

type SubcategoryClient interface {
	Fetch(ctx context.Context, catalog subcategory.Catalog) ([]subcategory.Entry, error)
}

// MenuLink — пункт меню со ссылкой.
type MenuLink struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Icon domain.IconID `json:"icon"`
	Link string        `json:"link"`
}

// MenuEntry — категория в навигационном меню.
type MenuEntry struct {
	MenuLink
	Subcategories []MenuLink `json:"subcategories"`
	HasPopover    bool       `json:"has_popover"`
	// AllLink — ссылка «Все в категории», есть только у категорий с поповером
	AllLink *MenuLink `json:"all_link,omitempty"`
	// Loading всегда false: меню отдаётся после завершения удалённых запросов
	Loading     bool `json:"loading"`
	Unavailable bool `json:"unavailable"`
}

type Service struct {
	log        *slog.Logger
	categories []domain.Category
	remote     SubcategoryClient
}

// New разбирает встроенное дерево категорий.
func New(log *slog.Logger, remote SubcategoryClient) (*Service, error) {
	const op = "catalog.New"

	categories, err := ParseCategories(categoriesYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category tree loaded", slog.String("op", op), slog.Int("categories", len(categories)))
	return &Service{log: log, categories: categories, remote: remote}, nil
}

// ParseCategories разбирает дерево категорий из YAML.
func ParseCategories(data []byte) ([]domain.Category, error) {
	var categories []domain.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("parse categories: category without id")
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("parse categories: duplicate category %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return categories, nil
}

// CategoryLink — ссылка на страницу категории.
func CategoryLink(id string) string {
	switch id {
	case CategoryProperty:
		return "/property"
	case CategoryTransport:
		return "/transport"
	default:
		return "/category/" + id
	}
}

// SubcategoryLink — ссылка на страницу подкатегории.
func SubcategoryLink(categoryID, subcategoryID string) string {
	return "/category/" + categoryID + "/" + subcategoryID
}

// Menu — навигационное меню на выбранном языке.
// Сбой удалённого справочника не фатален: категория остаётся без подкатегорий и помечается недоступной.
func (s *Service) Menu(ctx context.Context, lang domain.Language) []MenuEntry {
	remote := s.fetchRemote(ctx)

	return lo.Map(s.categories, func(c domain.Category, _ int) MenuEntry {
		entry := MenuEntry{
			MenuLink: MenuLink{
				ID:   c.ID,
				Name: c.Name.In(lang),
				Icon: resolveIcon(c.Icon),
				Link: CategoryLink(c.ID),
			},
			Subcategories: []MenuLink{},
		}

		_, isRemote := remoteCatalogs[c.ID]
		if isRemote {
			res := remote[c.ID]
			entry.Subcategories = localize(c.ID, res.subcategories, lang)
			entry.Unavailable = res.err != nil
		} else {
			entry.Subcategories = localize(c.ID, c.Subcategories, lang)
		}

		// Недвижимость и транспорт ведут на собственные страницы без поповера
		if c.ID == CategoryProperty || c.ID == CategoryTransport {
			return entry
		}

		entry.HasPopover = len(entry.Subcategories) > 0 || isRemote
		if entry.HasPopover {
			entry.AllLink = &MenuLink{
				ID:   c.ID,
				Name: allInCategory(lang) + " " + entry.Name,
				Icon: entry.Icon,
				Link: "/category/" + c.ID,
			}
		}
		return entry
	})
}

type remoteResult struct {
	subcategories []domain.Subcategory
	err           error
}

func (s *Service) fetchRemote(ctx context.Context) map[string]remoteResult {
	const op = "catalog.Service.fetchRemote"

	results := make(map[string]remoteResult, len(remoteCatalogs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for categoryID, rc := range remoteCatalogs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			entries, err := s.remote.Fetch(ctx, rc.catalog)
			if err != nil {
				s.log.Warn("remote subcategories unavailable",
					slog.String("op", op),
					slog.String("category_id", categoryID),
					sl.Err(err),
				)
			}

			subs := lo.FilterMap(entries, func(e subcategory.Entry, _ int) (domain.Subcategory, bool) {
				return domain.Subcategory{
					ID:    e.Slug,
					Name:  domain.LocalizedName{RU: e.NameRU, KZ: e.NameKZ},
					Icon:  string(rc.icon),
					Level: e.Level,
				}, e.Level == 1
			})

			mu.Lock()
			results[categoryID] = remoteResult{subcategories: subs, err: err}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return results
}

func localize(categoryID string, subs []domain.Subcategory, lang domain.Language) []MenuLink {
	links := make([]MenuLink, 0, len(subs))
	for _, sub := range subs {
		links = append(links, MenuLink{
			ID:   sub.ID,
			Name: sub.Name.In(lang),
			Icon: resolveIcon(sub.Icon),
			Link: SubcategoryLink(categoryID, sub.ID),
		})
	}
	return links
}

func resolveIcon(name string) domain.IconID {
	icon, _ := domain.ResolveIcon(name)
	return icon
}

func allInCategory(lang domain.Language) string {
	if lang == domain.LanguageKZ {
		return "Барлық санатта"
	}
	return "Все в категории"
}
