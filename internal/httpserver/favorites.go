package httpserver

import (
	"errors"
	"net/http"

	"tireshop/internal/domain"

	"github.com/gin-gonic/gin"
)

func listFavoritesHandler(store FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListByUser(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list favorites"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}

func addFavoriteHandler(store FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Add(c.Request.Context(), currentUser(c), c.Param("productID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add favorite"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func removeFavoriteHandler(store FavoriteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.Remove(c.Request.Context(), currentUser(c), c.Param("productID"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to remove favorite"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
