package orders

import (
	"encoding/json"
	"net/http"

	"garment-studio/core"
	"garment-studio/handlers/auth"
	"garment-studio/middleware"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// HandleCreate places an order from the submitted line items. Each item's
// customDesignId is a snapshot pointer captured now; later edits to the
// referenced design do not change the order.
func HandleCreate(store core.OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ClaimsContextKey).(*auth.AppClaims)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		var order core.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if len(order.Items) == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Order must contain at least one item"})
			return
		}

		order.UserID = claims.Subject
		id, err := store.CreateOrder(r.Context(), &order)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":  err,
				"userID": claims.Subject,
			}).Error("Failed to create order")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to create order"})
			return
		}
		order.ID = id

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// HandleList returns the caller's orders, newest first.
func HandleList(store core.OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ClaimsContextKey).(*auth.AppClaims)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		orders, err := store.ListOrders(r.Context(), claims.Subject)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":  err,
				"userID": claims.Subject,
			}).Error("Failed to list orders")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to list orders"})
			return
		}

		if orders == nil {
			orders = []*core.Order{}
		}
		render.JSON(w, r, map[string]any{"orders": orders})
	}
}
