// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/handler"
	enquiryhandler "github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/transport/handler"
	workshophandler "github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/transport/handler"
	platformhandler "github.com/j3-2000/routein-yoga-backend/internal/platform/http/handler"
)

// New builds the gin engine with all routes. The guard middleware protects
// profile and booking routes; registration, login and the public forms stay open.
func New(
	auth *authhandler.AuthHandler,
	enquiry *enquiryhandler.EnquiryHandler,
	workshop *workshophandler.BookingHandler,
	guard gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	// The site is served from a separate origin.
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/profile", guard, auth.Profile)

		// Public forms live under /auth for compatibility with the site.
		authGroup.POST("/community/join", enquiry.SubmitEnquiry)
		authGroup.POST("/contact", enquiry.SubmitContact)
	}

	workshopGroup := api.Group("/workshop")
	workshopGroup.Use(guard)
	{
		workshopGroup.POST("/book", workshop.Book)
		workshopGroup.GET("/bookings", workshop.List)
	}

	return r
}
