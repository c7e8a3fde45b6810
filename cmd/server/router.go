package main

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/geotrack/internal/handlers"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, locH *handlers.LocationHandler) {
	r.POST("/register", authH.Register)
	r.POST("/login", authH.Login)

	r.POST("/update-location", locH.UpdateLocation)
	r.GET("/my-location", locH.GetLocation)
}
