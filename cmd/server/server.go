package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/thereayou/geotrack/internal/database"
	"github.com/thereayou/geotrack/internal/handlers"
	"github.com/thereayou/geotrack/internal/middleware"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	AuthH  *handlers.AuthHandler
	LocH   *handlers.LocationHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}

	authH := handlers.NewAuthHandler(dbConn)
	locH := handlers.NewLocationHandler(dbConn)

	router := gin.Default()
	router.Use(middleware.RequestID())
	APIEndpoints(router, authH, locH)

	return &Server{
		Router: router,
		DB:     dbConn,
		AuthH:  authH,
		LocH:   locH,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
