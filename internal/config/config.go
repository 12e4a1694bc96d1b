package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/auction-network/auctiond/internal/core/application"
)

const (
	// ListeningPortKey is the port where the JSON/HTTP interface will listen on
	ListeningPortKey = "LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"

	// DbLocation is the subdirectory of the datadir holding the badger store
	DbLocation = "db"
)

var vip *viper.Viper

// InitConfig binds the AUCTIOND-prefixed environment, sets defaults and
// prepares the datadir.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("AUCTIOND")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9000)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(DBTypeKey, application.DBBadger)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	dbType := GetString(DBTypeKey)
	if dbType != application.DBBadger && dbType != application.DBInMemory {
		return fmt.Errorf(
			"%s must be either %s or %s",
			DBTypeKey, application.DBBadger, application.DBInMemory,
		)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), DbLocation))
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".auctiond"
	}
	return filepath.Join(home, ".auctiond")
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
