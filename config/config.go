package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

// Config is assembled once at process start and read-only afterwards. Secrets
// (API keys, bot token, AWS keypair) are not part of the yaml file; they are
// loaded from the environment during bootstrap and injected into each
// collaborator's own config struct.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	OpenAI    *OpenAIConfig    `yaml:"openai"`
	Directory *DirectoryConfig `yaml:"directory"`
	AWS       *AWSConfig       `yaml:"aws"`
	Telegram  *TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type OpenAIConfig struct {
	BaseUrl string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

type DirectoryConfig struct {
	BaseUrl string `yaml:"baseUrl"`
}

type AWSConfig struct {
	Region       string `yaml:"region"`
	OpinionTable string `yaml:"opinionTable"`
	TopicArn     string `yaml:"topicArn"`
}

type TelegramConfig struct {
	BroadcastChatIds []int64 `yaml:"broadcastChatIds"`
	BroadcastDelayMs int     `yaml:"broadcastDelayMs"`
}

func LoadConfig(envName types.EnvName) (*Config, error) {
	// read YAML file
	var data []byte
	var err error

	yamlFiles := map[types.EnvName]string{
		types.EnvLocal: "analyse.yaml",
		types.EnvDev:   "analyse.dev.yaml",
		types.EnvProd:  "analyse.prod.yaml",
	}
	fileName := yamlFiles[envName]
	data, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatalf("fail to load config file '%s': %v", fileName, err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		log.Fatalf("fail to decode config file '%v': %v", config, err)
	}
	return &config, nil
}
