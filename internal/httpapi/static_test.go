package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/louis833/Donnachy-Electrical/internal/httpapi"
)

func buildStaticRouter(testingT *testing.T) *gin.Engine {
	testingT.Helper()

	staticDirectory := testingT.TempDir()
	require.NoError(testingT, os.WriteFile(filepath.Join(staticDirectory, "index.html"), []byte("<html>home</html>"), 0o600))
	require.NoError(testingT, os.WriteFile(filepath.Join(staticDirectory, "styles.css"), []byte("body{}"), 0o600))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(httpapi.StaticFrontendHandler(staticDirectory))
	return router
}

func TestStaticFrontendServesExistingFile(t *testing.T) {
	router := buildStaticRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/styles.css", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "body{}", recorder.Body.String())
}

func TestStaticFrontendFallsBackToIndexForClientRoutes(t *testing.T) {
	router := buildStaticRouter(t)

	for _, clientRoute := range []string{"/", "/about", "/services/solar"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, clientRoute, nil))
		require.Equal(t, http.StatusOK, recorder.Code, "route %s", clientRoute)
		require.Contains(t, recorder.Body.String(), "home")
	}
}

func TestStaticFrontendNeverServesAPIRoutes(t *testing.T) {
	router := buildStaticRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
