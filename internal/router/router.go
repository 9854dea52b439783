package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	AdminLogin(c *ginext.Context)
	ListMovies(c *ginext.Context)
	AddMovie(c *ginext.Context)
	RemoveMovie(c *ginext.Context)
	AddShowtime(c *ginext.Context)
	SeatStatus(c *ginext.Context)
	Availability(c *ginext.Context)
	BookSeats(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/admin/login", h.AdminLogin)

		// Movies
		api.GET("/movies", h.ListMovies)
		api.POST("/movies", h.AddMovie)
		api.DELETE("/movies/:id", h.RemoveMovie)
		api.POST("/movies/:id/showtimes", h.AddShowtime)

		// Seats & bookings
		api.GET("/showtimes/:id/seats", h.SeatStatus)
		api.GET("/showtimes/:id/availability", h.Availability)
		api.POST("/bookings", h.BookSeats)
		api.GET("/users/:username/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
