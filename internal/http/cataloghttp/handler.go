package cataloghttp

import (
	"context"
	"log/slog"
	"net/http"

	"classifieds/internal/domain"
	"classifieds/internal/http/respond"
	"classifieds/internal/services/catalog"

	"github.com/go-chi/chi/v5"
)

type CatalogService interface {
	Menu(ctx context.Context, lang domain.Language) []catalog.MenuEntry
}

type menuResponse struct {
	Language   domain.Language     `json:"language"`
	Categories []catalog.MenuEntry `json:"categories"`
}

// Register регистрирует маршрут навигационного меню категорий.
func Register(r chi.Router, log *slog.Logger, service CatalogService) {
	r.Get("/categories", func(w http.ResponseWriter, r *http.Request) {
		lang := domain.ParseLanguage(r.URL.Query().Get("lang"))
		menu := service.Menu(r.Context(), lang)

		log.Debug("category menu built", slog.String("lang", string(lang)), slog.Int("categories", len(menu)))
		respond.JSON(w, http.StatusOK, menuResponse{Language: lang, Categories: menu})
	})
}
