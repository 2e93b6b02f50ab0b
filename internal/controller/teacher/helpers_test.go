package teacher

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/middleware"
)

var profe = middleware.Principal{UID: "t-1", Role: "teacher", Email: "profe@colegio.edu"}

func newRouter(register func(rg *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	r := gin.New()
	rg := r.Group("/teacher", func(c *gin.Context) { middleware.SetPrincipal(c, profe) })
	register(rg)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
