package config

import (
	"strings"

	"github.com/joho/godotenv"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/utils"
)

var Env = Environment{}

type Environment struct {
	EnvName types.EnvName
}

func init() {
	godotenv.Load()
	switch env := strings.ToLower(utils.LoadEnvWithDefault("ENVIRONMENT", "local")); env {
	case "prod", "production":
		Env.EnvName = types.EnvProd
	case "dev", "staging":
		Env.EnvName = types.EnvDev
	default:
		Env.EnvName = types.EnvLocal
	}
}
