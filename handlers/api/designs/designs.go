package designs

import (
	"encoding/json"
	"errors"
	"net/http"

	"garment-studio/core"
	"garment-studio/handlers/auth"
	"garment-studio/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

func claimsFrom(r *http.Request) (*auth.AppClaims, bool) {
	claims, ok := r.Context().Value(middleware.ClaimsContextKey).(*auth.AppClaims)
	return claims, ok
}

// HandleList returns all of the caller's saved designs, newest first.
func HandleList(store core.DesignStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		designs, err := store.List(r.Context(), claims.Subject)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":  err,
				"userID": claims.Subject,
			}).Error("Failed to list designs")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to list designs"})
			return
		}

		if designs == nil {
			designs = []*core.DesignRecord{}
		}
		render.JSON(w, r, map[string]any{"designs": designs})
	}
}

// HandleCreate saves a new design for the caller, attaching the active base
// custom product when one exists.
func HandleCreate(store core.DesignStore, products core.ProductStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		var payload core.DesignPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if payload.Name == "" {
			payload.Name = "My Custom Design"
		}

		design := &core.DesignRecord{
			UserID:       claims.Subject,
			Name:         payload.Name,
			FrontDesign:  payload.FrontDesign,
			BackDesign:   payload.BackDesign,
			PreviewFront: payload.PreviewFront,
			PreviewBack:  payload.PreviewBack,
		}
		if base, err := products.BaseCustomProduct(r.Context()); err == nil {
			design.BaseProductID = base.ID
		}

		id, err := store.Create(r.Context(), design)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":  err,
				"userID": claims.Subject,
			}).Error("Failed to create design")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to save design"})
			return
		}

		saved, err := store.Get(r.Context(), claims.Subject, id)
		if err != nil {
			saved = design
			saved.ID = id
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"message": "Design saved successfully",
			"design":  saved,
		})
	}
}

// HandleGet returns one design by id, scoped to the caller.
func HandleGet(store core.DesignStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		id := chi.URLParam(r, "id")
		design, err := store.Get(r.Context(), claims.Subject, id)
		if err != nil {
			if errors.Is(err, core.ErrDesignNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Design not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"error":    err,
				"userID":   claims.Subject,
				"designID": id,
			}).Error("Failed to get design")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to get design"})
			return
		}

		render.JSON(w, r, map[string]any{"design": design})
	}
}

// HandleUpdate overwrites an existing design from the request payload.
func HandleUpdate(store core.DesignStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		id := chi.URLParam(r, "id")
		existing, err := store.Get(r.Context(), claims.Subject, id)
		if err != nil {
			if errors.Is(err, core.ErrDesignNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Design not found"})
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to get design"})
			return
		}

		var payload core.DesignPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}

		if payload.Name != "" {
			existing.Name = payload.Name
		}
		if payload.FrontDesign != nil {
			existing.FrontDesign = payload.FrontDesign
		}
		if payload.BackDesign != nil {
			existing.BackDesign = payload.BackDesign
		}
		if payload.PreviewFront != "" {
			existing.PreviewFront = payload.PreviewFront
		}
		if payload.PreviewBack != "" {
			existing.PreviewBack = payload.PreviewBack
		}

		if err := store.Update(r.Context(), existing); err != nil {
			logrus.WithFields(logrus.Fields{
				"error":    err,
				"userID":   claims.Subject,
				"designID": id,
			}).Error("Failed to update design")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update design"})
			return
		}

		render.JSON(w, r, map[string]any{
			"message": "Design updated successfully",
			"design":  existing,
		})
	}
}

// HandleDelete removes a design by id, scoped to the caller.
func HandleDelete(store core.DesignStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"message": "User claims not found"})
			return
		}

		id := chi.URLParam(r, "id")
		if err := store.Delete(r.Context(), claims.Subject, id); err != nil {
			if errors.Is(err, core.ErrDesignNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Design not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"error":    err,
				"userID":   claims.Subject,
				"designID": id,
			}).Error("Failed to delete design")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete design"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Design deleted successfully"})
	}
}
