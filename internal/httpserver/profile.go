package httpserver

import (
	"errors"
	"net/http"

	"tireshop/internal/domain"
	"tireshop/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

func getProfileHandler(store ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := store.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// A user who never saved a profile gets an empty one.
				c.JSON(http.StatusOK, domain.Profile{UserID: currentUser(c)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load profile"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func updateProfileHandler(store ProfileStore, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		p, err := store.Upsert(c.Request.Context(), domain.Profile{
			UserID:  currentUser(c),
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save profile"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
