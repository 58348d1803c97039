package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings for the admin front-end. Values come from
// defaults, an optional config/.env.<env> file and environment variables, in
// increasing order of precedence.
type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string

	// SecretKey authenticates and encrypts the browser session cookie.
	SecretKey []byte

	Server struct {
		Host string
		Addr string
	}

	// API is the EduTrack backend this app is a client of.
	API struct {
		BaseURL string
		Timeout time.Duration
	}

	// PageSize is the fixed number of rows per page on list screens.
	PageSize int

	// DemoMode substitutes canned sample data when a backend collection
	// is unreachable. Never enabled in production.
	DemoMode bool

	RollbarToken string
	Build        string

	// SessionFile is where the CLI persists its session (user + token).
	SessionFile string
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "EduTrack Admin")
	v.SetDefault("secretKey", "edu-track-4dm1n-(change-me-in-prod)-s3cr3t")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8080")
	v.SetDefault("apiBaseUrl", "http://localhost:3000/api")
	v.SetDefault("apiTimeout", 15*time.Second)
	v.SetDefault("pageSize", 10)
	v.SetDefault("demoMode", false)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")
	v.SetDefault("sessionFile", defaultSessionFile())

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		SecretKey:    []byte(v.GetString("secretKey")),
		PageSize:     v.GetInt("pageSize"),
		DemoMode:     v.GetBool("demoMode"),
		RollbarToken: v.GetString("rollbarToken"),
		Build:        v.GetString("build"),
		SessionFile:  v.GetString("sessionFile"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	conf.API.BaseURL = v.GetString("apiBaseUrl")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	return conf
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".edutrack-session.json"
	}
	return filepath.Join(home, ".edutrack", "session.json")
}
