package httpserver

import (
	"errors"
	"net/http"

	"tireshop/internal/domain"
	productrepo "tireshop/internal/repository/product"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := productrepo.Filter{
			Season: c.Query("season"),
			Size:   c.Query("size"),
			Type:   c.Query("type"),
			Query:  c.Query("q"),
		}
		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("productID"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
