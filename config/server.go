package config

import "os"

// Server holds the env-driven server configuration. Values come from the
// environment (godotenv loads .env first), every field has a usable default.
type Server struct {
	Port       string
	Prod       bool
	UseHTTPS   bool
	CertFile   string
	KeyFile    string
	CORSOrigin string
}

// Load reads the server configuration from the environment.
func Load() *Server {
	cfg := &Server{
		Port:       os.Getenv("PORT"),
		Prod:       os.Getenv("PROD") == "true",
		UseHTTPS:   os.Getenv("USE_HTTPS") == "true",
		CertFile:   os.Getenv("CERT_FILE"),
		KeyFile:    os.Getenv("KEY_FILE"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}

	if cfg.Port == "" {
		if cfg.UseHTTPS {
			cfg.Port = "443"
		} else {
			cfg.Port = "8080"
		}
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}

	return cfg
}
