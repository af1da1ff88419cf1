package handle

import (
	"net/http"

	"aurora-grand/internal/storefront/app/services"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"
)

type MenuHandler struct {
	menu  *services.MenuService
	mylog logger.Logger
}

func NewMenuHandler(menu *services.MenuService, mylog logger.Logger) *MenuHandler {
	return &MenuHandler{
		menu:  menu,
		mylog: mylog,
	}
}

// List serves the catalog, optionally filtered by ?category=. An unknown
// category yields an empty list, not an error.
func (mh *MenuHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selected := r.URL.Query().Get("category")

		items := services.FilterByCategory(mh.menu.Items(), selected)
		if items == nil {
			items = []models.CatalogItem{}
		}

		mh.mylog.Action("menu_served").Debug("Menu listed", "category", selected, "items", len(items))
		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"items": items,
		})
	}
}
