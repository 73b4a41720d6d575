package httpserver

import (
	"errors"
	"net/http"

	"tireshop/internal/domain"
	"tireshop/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load cart"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func addCartItemHandler(svc CartService, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		item, err := svc.Add(c.Request.Context(), currentUser(c), req.ProductID, req.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to add to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func deleteCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Remove(c.Request.Context(), currentUser(c), c.Param("itemID"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to remove cart item"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), currentUser(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
