package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	RequestTimeout time.Duration
	CORSOrigins    []string
	AuditDepth     int
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present.
func FromEnv() Server {
	_ = godotenv.Load()

	addr := os.Getenv("SKYCLAIM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("SKYCLAIM_REQUEST_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	origins := []string{"*"}
	if raw := os.Getenv("SKYCLAIM_CORS_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	// Bound on the in-memory decision audit trail.
	auditDepth := 1000
	if raw := os.Getenv("SKYCLAIM_AUDIT_DEPTH"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			auditDepth = n
		}
	}

	return Server{
		Addr:           addr,
		RequestTimeout: timeout,
		CORSOrigins:    origins,
		AuditDepth:     auditDepth,
	}
}
