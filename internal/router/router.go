package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSpot(c *ginext.Context)
	GetSpot(c *ginext.Context)
	ListSpots(c *ginext.Context)
	UpdateSpot(c *ginext.Context)
	DeleteSpot(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Parking spots
		api.POST("/spots", h.CreateSpot)
		api.GET("/spots", h.ListSpots)
		api.GET("/spots/:id", h.GetSpot)
		api.PUT("/spots/:id", h.UpdateSpot)
		api.DELETE("/spots/:id", h.DeleteSpot)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.DELETE("/reservations/:id", h.DeleteReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
