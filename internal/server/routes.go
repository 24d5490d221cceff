package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/handlers"
	"github.com/nfrund/hireboard/internal/middleware"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/uploads"
	"github.com/nfrund/hireboard/internal/workspace"
	"github.com/nfrund/hireboard/web/src/templates/pages"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	con := do.MustInvoke[*handlers.Console](s.injector)
	spaces := do.MustInvoke[*workspace.Registry](s.injector)

	authHandler := handlers.NewAuthHandler(do.MustInvoke[*apiclient.Client](s.injector), spaces)
	dashboardHandler := handlers.NewDashboardHandler(con, do.MustInvoke[*notify.Feed](s.injector))
	usersHandler := handlers.NewUsersHandler(con)
	providersHandler := handlers.NewProvidersHandler(con)
	categoryHandler := handlers.NewCategoryHandler(con, do.MustInvoke[*uploads.Stager](s.injector))
	feeHandler := handlers.NewFeeHandler(con)
	contentHandler := handlers.NewContentHandler(con)
	orderHandler := handlers.NewOrderHandler(con)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, handlers.HomePath)
	})

	s.E.GET(middleware.SignInPath, authHandler.SignInGet)
	s.E.POST(middleware.SignInPath, authHandler.SignInPost, middleware.SignInLimiter())
	s.E.POST("/signout", authHandler.SignOut)

	admin := s.E.Group("/admin", middleware.Guard(spaces))
	admin.GET("/dashboard", dashboardHandler.DashboardGet)

	for _, h := range []*handlers.AccountHandler{usersHandler, providersHandler} {
		g := admin.Group("/" + h.Slug())
		g.GET("", h.List)
		g.GET("/table", h.Table)
		g.DELETE("/detail", h.CloseDetail)
		g.GET("/:id", h.Detail)
		g.POST("/:id/active", h.SetActive)
	}
	admin.POST("/"+pages.Providers.Slug+"/:id/verified", providersHandler.SetVerified)

	categories := admin.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.GET("/table", categoryHandler.Table)
	categories.DELETE("/detail", categoryHandler.CloseEditor)
	categories.GET("/:id", categoryHandler.Editor)
	categories.POST("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)
	categories.POST("/:id/subcategories", categoryHandler.CreateSubcategory)
	categories.POST("/:id/subcategories/:sid", categoryHandler.UpdateSubcategory)
	categories.DELETE("/:id/subcategories/:sid", categoryHandler.DeleteSubcategory)

	admin.GET("/platform-fees", feeHandler.List)
	admin.POST("/platform-fees", feeHandler.Save)
	admin.GET("/platform-fees/table", feeHandler.Table)

	admin.GET("/content/:slug", contentHandler.Edit)
	admin.POST("/content/:slug", contentHandler.Save)
	admin.GET("/content/:slug/editor", contentHandler.Editor)

	direct := admin.Group("/direct-orders")
	direct.GET("", orderHandler.DirectList)
	direct.GET("/table", orderHandler.DirectTable)
	direct.DELETE("/detail", orderHandler.DirectClose)
	direct.GET("/:id", orderHandler.DirectDetail)
	direct.GET("/:id/summary", orderHandler.DirectSummary)

	emergency := admin.Group("/emergency-orders")
	emergency.GET("", orderHandler.EmergencyList)
	emergency.GET("/table", orderHandler.EmergencyTable)
	emergency.DELETE("/detail", orderHandler.EmergencyClose)
	emergency.GET("/:id", orderHandler.EmergencyDetail)
}
