package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/repo-sumit/survey-builder-be/pkg/db"
	"github.com/repo-sumit/survey-builder-be/pkg/utils"
	"gopkg.in/yaml.v2"

	surveyDB "github.com/repo-sumit/survey-builder-be/pkg/db/survey"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_SURVEY_DB_USERNAME = "SURVEY_DB_USERNAME"
	ENV_SURVEY_DB_PASSWORD = "SURVEY_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		SurveyDB db.DBConfigYaml `json:"survey_db" yaml:"survey_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	LockCleanupConfig struct {
		MaxLockAge string `json:"max_lock_age" yaml:"max_lock_age"`
	} `json:"lock_cleanup_config" yaml:"lock_cleanup_config"`
}

var conf config

var (
	surveyDBService *surveyDB.SurveyDBService

	maxLockAge time.Duration
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	maxLockAge, err = utils.ParseDurationString(conf.LockCleanupConfig.MaxLockAge)
	if err != nil {
		slog.Error("couldn't parse max lock age", slog.String("error", err.Error()), slog.String("value", conf.LockCleanupConfig.MaxLockAge))
		panic(err)
	}

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_SURVEY_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.SurveyDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_SURVEY_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.SurveyDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	surveyDBService, err = surveyDB.NewSurveyDBService(db.DBConfigFromYamlObj(conf.DBConfigs.SurveyDB, conf.InstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Survey DB", slog.String("error", err.Error()))
		panic(err)
	}
}
