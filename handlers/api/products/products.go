package products

import (
	"errors"
	"net/http"

	"garment-studio/core"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// HandleBaseProduct returns the blank custom garment product the design
// editor prices against. Public: the editor shows it before login.
func HandleBaseProduct(store core.ProductStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := store.BaseCustomProduct(r.Context())
		if err != nil {
			if errors.Is(err, core.ErrProductNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Custom compression shirt product not found"})
				return
			}
			logrus.WithError(err).Error("Failed to get base product")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to get base product"})
			return
		}

		render.JSON(w, r, map[string]any{"product": product})
	}
}
