package middleware

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServeImages serves files from dir under the route's *filepath parameter,
// answering missing files with a JSON 404 instead of the file server's
// plain-text body.
func ServeImages(dir string) gin.HandlerFunc {
	root := http.Dir(dir)
	server := http.StripPrefix("/images", http.FileServer(root))

	return func(c *gin.Context) {
		f, err := root.Open(c.Param("filepath"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open image"})
			return
		}
		_ = f.Close()

		server.ServeHTTP(c.Writer, c.Request)
	}
}
