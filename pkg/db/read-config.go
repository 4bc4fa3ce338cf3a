package db

import (
	"fmt"
	"log/slog"
)

// DBConfigFromYamlObj converts the yaml config representation into the
// connection config used by the DB services. Credentials are expected to
// be present by this point (env overrides already applied).
func DBConfigFromYamlObj(yamlObj DBConfigYaml, instanceIDs []string) DBConfig {
	if yamlObj.ConnectionStr == "" || yamlObj.Username == "" || yamlObj.Password == "" {
		slog.Error("couldn't read DB credentials from config")
		panic("couldn't read DB credentials from config")
	}

	uri := fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)

	timeout := yamlObj.Timeout
	if timeout < 1 {
		timeout = 30
	}

	return DBConfig{
		URI:              uri,
		Timeout:          timeout,
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		MaxPoolSize:      uint64(yamlObj.MaxPoolSize),
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		InstanceIDs:      instanceIDs,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
