package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"branchsite/carousel"
)

/* -------------------- Testimonials -------------------- */

// GET /testimonials
func (d *deps) getTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"testimonials": d.testimonials,
		"total":        len(d.testimonials),
	})
}

// carouselView is the state plus the testimonial currently on display.
func (d *deps) carouselView(extra gin.H) gin.H {
	out := gin.H{"state": d.featured.State()}
	if cur, ok := d.featured.Current(); ok {
		out["current"] = cur
	} else {
		out["current"] = nil
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// GET /testimonials/carousel
func (d *deps) getCarousel(c *gin.Context) {
	c.JSON(http.StatusOK, d.carouselView(nil))
}

// POST /testimonials/carousel/next
func (d *deps) carouselNext(c *gin.Context) {
	applied := d.featured.Next()
	d.metrics.CarouselCommand("next", applied)
	c.JSON(http.StatusOK, d.carouselView(gin.H{"applied": applied}))
}

// POST /testimonials/carousel/previous
func (d *deps) carouselPrevious(c *gin.Context) {
	applied := d.featured.Previous()
	d.metrics.CarouselCommand("previous", applied)
	c.JSON(http.StatusOK, d.carouselView(gin.H{"applied": applied}))
}

// POST /testimonials/carousel/toggle
func (d *deps) carouselToggle(c *gin.Context) {
	playing := d.featured.TogglePlay()
	d.metrics.CarouselCommand("toggle", true)
	c.JSON(http.StatusOK, d.carouselView(gin.H{"applied": true, "autoPlaying": playing}))
}

// POST /testimonials/carousel/goto/:index
func (d *deps) carouselGoTo(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse index."})
		return
	}
	// out-of-range and same-index jumps are ignored, not errors
	applied := d.featured.GoTo(index)
	d.metrics.CarouselCommand("goto", applied)
	c.JSON(http.StatusOK, d.carouselView(gin.H{"applied": applied}))
}

type touchRequest struct {
	Phase string   `json:"phase" binding:"required,oneof=start move end"`
	X     *float64 `json:"x"`
}

// POST /testimonials/carousel/touch
func (d *deps) carouselTouch(c *gin.Context) {
	var req touchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	if req.Phase != "end" && req.X == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "x is required for start and move."})
		return
	}

	swipe := carousel.SwipeNone
	switch req.Phase {
	case "start":
		d.featured.TouchStart(*req.X)
	case "move":
		d.featured.TouchMove(*req.X)
	case "end":
		swipe = d.featured.TouchEnd()
	}
	// an ended gesture applies only when it navigated
	applied := req.Phase != "end" || swipe != carousel.SwipeNone
	d.metrics.CarouselCommand("touch-"+req.Phase, applied)
	c.JSON(http.StatusOK, d.carouselView(gin.H{"applied": applied, "swipe": swipe}))
}
