package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"branchsite/theme"
)

/* -------------------- Theme -------------------- */

// clientCookie identifies a browser across theme requests.
const clientCookie = "pace-ieee-client"

// clientID returns the visitor's id, issuing a cookie on first contact.
func clientID(c *gin.Context) string {
	if id, err := c.Cookie(clientCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(clientCookie, id, 365*24*60*60, "/", "", false, true)
	return id
}

func (d *deps) currentTheme(c *gin.Context, client string) theme.Theme {
	c.Header("Accept-CH", theme.HintHeader)
	prefersDark := theme.PrefersDark(c.GetHeader(theme.HintHeader))
	return theme.Resolve(c.Request.Context(), d.themes, client, prefersDark, d.log)
}

// GET /theme
func (d *deps) getTheme(c *gin.Context) {
	client := clientID(c)
	c.JSON(http.StatusOK, gin.H{"theme": d.currentTheme(c, client)})
}

// PUT /theme
func (d *deps) putTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	t, ok := theme.Parse(req.Theme)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Theme must be dark or light."})
		return
	}
	saved := theme.Save(c.Request.Context(), d.themes, clientID(c), t, d.log)
	c.JSON(http.StatusOK, gin.H{"theme": t, "saved": saved})
}

// POST /theme/toggle
func (d *deps) toggleTheme(c *gin.Context) {
	client := clientID(c)
	next := d.currentTheme(c, client).Toggle()
	saved := theme.Save(c.Request.Context(), d.themes, client, next, d.log)
	c.JSON(http.StatusOK, gin.H{
		"theme":        next,
		"saved":        saved,
		"announcement": "Theme switched to " + string(next) + " mode",
	})
}
