// authcheck is a one-shot smoke client for the development auth API.
// The auth service itself lives outside this repository; these commands
// just poke its endpoints the way a developer would by hand:
//
//	authcheck reset        recreate the test user
//	authcheck login        dev login, prints the issued token's claims
//	authcheck login-plain  plain credential login
//	authcheck lockout      hammer bad credentials until the account locks
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type config struct {
	BaseURL  string        `envconfig:"AUTH_BASE_URL" default:"http://localhost:3000"`
	Email    string        `envconfig:"AUTH_TEST_EMAIL" default:"test@example.com"`
	Password string        `envconfig:"AUTH_TEST_PASSWORD" default:"test-password-123"`
	Timeout  time.Duration `envconfig:"AUTH_TIMEOUT" default:"10s"`
	// Attempts is how many bad logins the lockout probe fires.
	Attempts int `envconfig:"AUTH_LOCKOUT_ATTEMPTS" default:"6"`
}

type client struct {
	cfg  config
	http *http.Client
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to process config", "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: authcheck <reset|login|login-plain|lockout>")
		os.Exit(2)
	}

	c := &client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var err error

	switch cmd := os.Args[1]; cmd {
	case "reset":
		err = c.reset(ctx)
	case "login":
		err = c.login(ctx, "/api/auth/dev-login", true)
	case "login-plain":
		err = c.login(ctx, "/api/auth/login", false)
	case "lockout":
		err = c.lockout(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("smoke check failed", "error", err)
		os.Exit(1)
	}
}

// reset recreates the test user so the other probes start from a known state.
func (c *client) reset(ctx context.Context) error {
	status, body, err := c.post(ctx, "/api/auth/dev-reset-user", map[string]string{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
	})
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("reset returned status %d: %s", status, body)
	}

	fmt.Printf("reset ok (status %d)\n", status)

	return nil
}

func (c *client) login(ctx context.Context, path string, expectToken bool) error {
	status, body, err := c.post(ctx, path, map[string]string{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
	})
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("login returned status %d: %s", status, body)
	}

	fmt.Printf("login ok (status %d)\n", status)

	if !expectToken {
		return nil
	}

	var resp struct {
		Token string `json:"token"`
	}

	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" {
		return fmt.Errorf("response carried no token: %s", body)
	}

	printClaims(resp.Token)

	return nil
}

// lockout fires bad credentials until the service starts refusing the
// account, then verifies the right credentials are refused too.
func (c *client) lockout(ctx context.Context) error {
	locked := false

	for i := 1; i <= c.cfg.Attempts; i++ {
		status, _, err := c.post(ctx, "/api/auth/login", map[string]string{
			"email":    c.cfg.Email,
			"password": "definitely-wrong-" + fmt.Sprint(i),
		})
		if err != nil {
			return err
		}

		fmt.Printf("attempt %d: status %d\n", i, status)

		if status == http.StatusLocked || status == http.StatusTooManyRequests {
			locked = true
			break
		}
	}

	if !locked {
		return fmt.Errorf("account never locked after %d bad attempts", c.cfg.Attempts)
	}

	status, _, err := c.post(ctx, "/api/auth/login", map[string]string{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
	})
	if err != nil {
		return err
	}

	if status == http.StatusOK {
		return fmt.Errorf("locked account accepted valid credentials")
	}

	fmt.Printf("lockout ok: valid credentials refused with status %d\n", status)

	return nil
}

func (c *client) post(ctx context.Context, path string, payload map[string]string) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// printClaims decodes the token without verifying it. This is a dev smoke
// tool; it has no business holding the signing key.
func printClaims(token string) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		fmt.Printf("token received but not decodable: %v\n", err)
		return
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Printf("token expires %s\n", exp.Format(time.RFC3339))
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Printf("token subject %s\n", sub)
	}
}
