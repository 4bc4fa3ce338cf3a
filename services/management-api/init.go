package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/repo-sumit/survey-builder-be/pkg/apihelpers"
	"github.com/repo-sumit/survey-builder-be/pkg/db"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys"
	"github.com/repo-sumit/survey-builder-be/pkg/utils"
	"gopkg.in/yaml.v2"

	"github.com/gin-gonic/gin"

	surveyDB "github.com/repo-sumit/survey-builder-be/pkg/db/survey"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_SURVEY_DB_USERNAME = "SURVEY_DB_USERNAME"
	ENV_SURVEY_DB_PASSWORD = "SURVEY_DB_PASSWORD"

	ENV_MANAGEMENT_USER_JWT_SIGN_KEY = "MANAGEMENT_USER_JWT_SIGN_KEY"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use            bool   `json:"use" yaml:"use"`
			ServerCertPath string `json:"server_cert_path" yaml:"server_cert_path"`
			ServerKeyPath  string `json:"server_key_path" yaml:"server_key_path"`
			CACertPath     string `json:"ca_cert_path" yaml:"ca_cert_path"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// JWT configs
	ManagementUserJWTConfig struct {
		SignKey   string `json:"sign_key" yaml:"sign_key"`
		ExpiresIn string `json:"expires_in" yaml:"expires_in"`
	} `json:"management_user_jwt_config" yaml:"management_user_jwt_config"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	// DB configs
	DBConfigs struct {
		SurveyDB db.DBConfigYaml `json:"survey_db" yaml:"survey_db"`
	} `json:"db_configs" yaml:"db_configs"`

	FeatureFlags struct {
		PublishingEnabled bool `json:"publishing_enabled" yaml:"publishing_enabled"`
	} `json:"feature_flags" yaml:"feature_flags"`
}

var conf config

var (
	surveyDBService *surveyDB.SurveyDBService

	managementUserJWTExpiresIn time.Duration
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

	managementUserJWTExpiresIn, err = utils.ParseDurationString(conf.ManagementUserJWTConfig.ExpiresIn)
	if err != nil {
		slog.Error("couldn't parse management user JWT expiry", slog.String("error", err.Error()), slog.String("value", conf.ManagementUserJWTConfig.ExpiresIn))
		panic(err)
	}

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init db
	initDBs()

	// init survey service
	surveys.Init(surveyDBService)
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_SURVEY_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.SurveyDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_SURVEY_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.SurveyDB.Password = dbPassword
	}

	if signKey := os.Getenv(ENV_MANAGEMENT_USER_JWT_SIGN_KEY); signKey != "" {
		conf.ManagementUserJWTConfig.SignKey = signKey
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

func certificatePaths() apihelpers.CertificatePaths {
	return apihelpers.CertificatePaths{
		ServerCertPath: conf.GinConfig.MTLS.ServerCertPath,
		ServerKeyPath:  conf.GinConfig.MTLS.ServerKeyPath,
		CACertPath:     conf.GinConfig.MTLS.CACertPath,
	}
}
