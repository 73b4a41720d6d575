package httpserver

import (
	"net/http"

	"tireshop/internal/domain"

	"github.com/gin-gonic/gin"
)

func listOrdersHandler(orders OrderLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByUser(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list orders"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"results": list, "total": len(list)})
	}
}
