// Package secrets resolves database credentials from an external secret
// store.  The application never reads DB credentials from its own
// environment; it is pointed at a secret document (a mounted secret volume
// entry) and fetches the credentials once per process.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Credentials is the structured record held by the secret store entry.
// All four core fields are required; Port defaults to 3306 when the store
// omits it.
type Credentials struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Name     string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Provider fetches the database credentials record.  Fetch is synchronous
// and may be called repeatedly; implementations cache the first successful
// result for the process lifetime.
type Provider interface {
	Fetch(ctx context.Context) (Credentials, error)
}

// fileProvider reads the secret document from a path on disk, the way a
// Kubernetes secret or cloud secret agent exposes entries to the process.
type fileProvider struct {
	path  string
	once  sync.Once
	creds Credentials
	err   error
}

// NewFileProvider returns a Provider backed by the JSON document at path.
func NewFileProvider(path string) Provider {
	return &fileProvider{path: path}
}

// FromEnv builds the default provider from SECRET_STORE_PATH.  A missing
// variable is a configuration error: the caller halts startup.
func FromEnv() (Provider, error) {
	path := os.Getenv("SECRET_STORE_PATH")
	if path == "" {
		return nil, fmt.Errorf("secrets: SECRET_STORE_PATH is not set")
	}
	return NewFileProvider(path), nil
}

// Fetch reads and validates the secret entry.  The result (or the failure)
// is cached: secret resolution happens once per process lifetime.
func (p *fileProvider) Fetch(_ context.Context) (Credentials, error) {
	p.once.Do(func() {
		raw, err := os.ReadFile(p.path)
		if err != nil {
			p.err = fmt.Errorf("secrets: read %s: %w", p.path, err)
			return
		}
		var c Credentials
		if err := json.Unmarshal(raw, &c); err != nil {
			p.err = fmt.Errorf("secrets: decode %s: %w", p.path, err)
			return
		}
		if err := c.validate(); err != nil {
			p.err = err
			return
		}
		if c.Port == "" {
			c.Port = "3306"
		}
		p.creds = c
	})
	return p.creds, p.err
}

func (c Credentials) validate() error {
	missing := []string{}
	if c.Host == "" {
		missing = append(missing, "host")
	}
	if c.Name == "" {
		missing = append(missing, "database")
	}
	if c.User == "" {
		missing = append(missing, "user")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("secrets: entry is missing required fields: %v", missing)
	}
	return nil
}

// Static wraps fixed credentials, for tests and local development.
type Static struct{ Credentials }

func (s Static) Fetch(context.Context) (Credentials, error) {
	if err := s.validate(); err != nil {
		return Credentials{}, err
	}
	c := s.Credentials
	if c.Port == "" {
		c.Port = "3306"
	}
	return c, nil
}
