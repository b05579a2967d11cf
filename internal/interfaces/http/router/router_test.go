package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func TestRouterMountsUnderVersionPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	group := NewDomainGroup("catalog", "/items")
	group.GET("", ok)

	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v2/items", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterDefaultVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("system", "/system")
	group.GET("/ping", ok)

	r.Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterMiddlewareAppliesToAllGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	var calls int
	r.Use(func(c *gin.Context) {
		calls++
		c.Next()
	})

	items := NewDomainGroup("catalog", "/items")
	items.GET("", ok)
	orders := NewDomainGroup("ordering", "/orders")
	orders.GET("", ok)

	r.Register(items).Register(orders).Setup()

	for _, path := range []string{"/api/v1/items", "/api/v1/orders"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestDomainGroupMethodsAndSubgroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("stores", "/stores")
	group.GET("/:id", ok).
		POST("", ok).
		PUT("/:id", ok).
		PATCH("/:id/activate", ok).
		DELETE("/:id", ok)

	stock := group.Group("inventory", "/:id/stock")
	stock.GET("", ok)

	r.Register(group).Setup()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/stores/abc"},
		{http.MethodPost, "/api/v1/stores"},
		{http.MethodPut, "/api/v1/stores/abc"},
		{http.MethodPatch, "/api/v1/stores/abc/activate"},
		{http.MethodDelete, "/api/v1/stores/abc"},
		{http.MethodGet, "/api/v1/stores/abc/stock"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestDomainGroupMiddlewareScopedToGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	guarded := NewDomainGroup("admin", "/admin")
	guarded.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	})
	guarded.GET("/users", ok)

	open := NewDomainGroup("catalog", "/items")
	open.GET("", ok)

	r.Register(guarded).Register(open).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroupAccessors(t *testing.T) {
	group := NewDomainGroup("ordering", "/orders")
	assert.Equal(t, "ordering", group.Name())
	assert.Equal(t, "/orders", group.Prefix())
}
