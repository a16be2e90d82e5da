package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"branchsite/models"
	"branchsite/newsletter"
	"branchsite/utils"
)

/* -------------------- Newsletter -------------------- */

// POST /newsletter
func (d *deps) subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		d.metrics.Signup("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	receipt, err := d.newsletter.Subscribe(c.Request.Context(), req.Email)
	switch {
	case errors.Is(err, newsletter.ErrEmailRequired):
		d.metrics.Signup("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email address is required"})
		return
	case errors.Is(err, newsletter.ErrEmailInvalid):
		d.metrics.Signup("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email address"})
		return
	case errors.Is(err, models.ErrAlreadySubscribed):
		d.metrics.Signup("duplicate")
		c.JSON(http.StatusConflict, gin.H{"message": "This email is already subscribed."})
		return
	case err != nil:
		d.metrics.Signup("error")
		d.log.WithError(err).Error("newsletter signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not subscribe. Try again later."})
		return
	}

	d.metrics.Signup("created")
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Thank you for subscribing!",
		"subscriber":       receipt.Subscriber,
		"unsubscribeToken": receipt.UnsubscribeToken,
	})
}

// DELETE /newsletter?token=
func (d *deps) unsubscribe(c *gin.Context) {
	err := d.newsletter.Unsubscribe(c.Request.Context(), c.Query("token"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "You have been unsubscribed."})
	case errors.Is(err, utils.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid unsubscribe link."})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Subscriber not found."})
	case errors.Is(err, newsletter.ErrUnsubscribeDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"message": "Unsubscribe links are not enabled."})
	default:
		d.log.WithError(err).Error("newsletter unsubscribe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not unsubscribe. Try again later."})
	}
}
