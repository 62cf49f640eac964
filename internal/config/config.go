package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	APIURL         string
	RequestTimeout time.Duration
	ListenAddr     string
	DBPath         string
	UIDensity      int
}

func Default() RuntimeConfig {
	return RuntimeConfig{
		APIURL:         "http://localhost:3000/api",
		RequestTimeout: 10 * time.Second,
		ListenAddr:     ":3000",
		DBPath:         "weekplan.db",
		UIDensity:      1,
	}
}

// FromEnv overlays WEEKPLAN_* variables on base. Unset or unparseable values
// keep the base value.
func FromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("WEEKPLAN_API_URL"); ok {
		cfg.APIURL = v
	}
	if v, ok := getEnvInt("WEEKPLAN_REQUEST_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v, ok := getEnvString("WEEKPLAN_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := getEnvString("WEEKPLAN_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("WEEKPLAN_UI_DENSITY"); ok && v >= 1 && v <= 3 {
		cfg.UIDensity = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
