package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterSPA serves the single-page frontend: /assets from the static build,
// index.html for every unmatched GET outside the API prefixes. API routes are
// registered first, so they always win; unknown paths under an API prefix
// stay a JSON 404 rather than falling through to the frontend.
func RegisterSPA(r *gin.Engine, staticDir string, apiPrefixes []string) {
	assets := filepath.Join(staticDir, "assets")
	if fi, err := os.Stat(assets); err == nil && fi.IsDir() {
		r.Static("/assets", assets)
	}
	index := filepath.Join(staticDir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range apiPrefixes {
			if path == p || strings.HasPrefix(path, p+"/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "frontend not found"})
	})
}
