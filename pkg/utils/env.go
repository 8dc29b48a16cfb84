package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func LoadEnv(key string) string {
	value, valid := os.LookupEnv(key)

	if !valid {
		log.Fatalf("fail to load env '%v'", key)
	}
	if value == "" {
		log.Fatalf("env '%v' is empty", key)
		return ""
	}

	return value
}

func LoadEnvWithDefault(key string, fallback string) string {
	value, valid := os.LookupEnv(key)
	if !valid || value == "" {
		return fallback
	}
	return value
}

