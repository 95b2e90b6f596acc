package web

import (
	"bracket-pool/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that handles webhook and standings requests
type Server struct {
	api *api.API
}
