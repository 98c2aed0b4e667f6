package config

import (
	"log"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	API_HOST  = os.Getenv("API_HOST")
	API_ENV   = os.Getenv("API_ENV")
	API_TOKEN = os.Getenv("API_TOKEN")
)

const (
	DATE_PARSE_FORMAT  = "2006-01-02"
	CLOCK_PARSE_FORMAT = "15:04:05"
	CLOCK_SHORT_FORMAT = "15:04"

	// Seconds a participant may spend completing the booking form
	// before being redirected back to the event detail page.
	DEFAULT_BOOKING_TIMEOUT = 600
)

func Load() {
	if os.Getenv("API_ENV") != "local" {
		return
	}
	cwd, _ := os.Getwd()
	if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
		log.Printf("Could not load .env file: %s\n", err.Error())
		return
	}
	API_HOST = os.Getenv("API_HOST")
	API_ENV = os.Getenv("API_ENV")
	API_TOKEN = os.Getenv("API_TOKEN")
}

// SessionToken is the default bearer credential source. Components take a
// token func so tests and embedders can supply their own.
func SessionToken() string {
	return os.Getenv("API_TOKEN")
}

func TempDir() string {
	dir := os.Getenv("TEMP_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return dir
}

func BookingTimeoutSeconds() int {
	raw := os.Getenv("BOOKING_TIMEOUT_SECONDS")
	if raw == "" {
		return DEFAULT_BOOKING_TIMEOUT
	}
	atoi, err := strconv.Atoi(raw)
	if err != nil || atoi <= 0 {
		log.Printf("Invalid BOOKING_TIMEOUT_SECONDS [%s], using default\n", raw)
		return DEFAULT_BOOKING_TIMEOUT
	}
	return atoi
}
