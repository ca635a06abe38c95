package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	apiRoutePrefix    = "/api/"
	indexFileName     = "index.html"
	notFoundErrorBody = "not_found"
)

// StaticFrontendHandler serves the built client bundle from the given
// directory, falling back to index.html for client-side routes. Paths under
// /api/ are never served from disk. Register via router.NoRoute.
func StaticFrontendHandler(staticDirectory string) gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDirectory))

	return func(context *gin.Context) {
		requestPath := context.Request.URL.Path
		if strings.HasPrefix(requestPath, apiRoutePrefix) {
			context.JSON(http.StatusNotFound, gin.H{"error": notFoundErrorBody})
			return
		}

		cleanedPath := filepath.Clean("/" + requestPath)
		candidatePath := filepath.Join(staticDirectory, cleanedPath)
		fileInfo, statErr := os.Stat(candidatePath)
		if statErr != nil || fileInfo.IsDir() {
			context.File(filepath.Join(staticDirectory, indexFileName))
			return
		}

		fileServer.ServeHTTP(context.Writer, context.Request)
	}
}
