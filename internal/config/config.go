package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "EVERSE"

var Opts *Options

// LoadEnv loads .env style files into the process environment. Missing files
// are not an error; variables already set win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "unable to load env file %s", f)
		}
	}
	return nil
}

// GetConfig layers defaults, the optional config file and EVERSE_* environment
// variables, then resolves the data directory.
func GetConfig(file string) (*Options, error) {
	opts := GetDefaultOptions()

	v := viper.New()
	for key, value := range defaults(opts) {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", file)
		}
	}
	if err := v.Unmarshal(opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	dataDir, err := checkDataDir(opts.Data)
	if err != nil {
		return nil, err
	}
	opts.Data = dataDir
	if opts.DSN == "" {
		opts.DSN = filepath.Join(opts.Data, defaultDBName)
	}
	if !filepath.IsAbs(opts.LogFile) {
		opts.LogFile = filepath.Join(opts.Data, opts.LogFile)
	}

	Opts = opts
	return Opts, nil
}

func ParseFile(file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}
	return GetConfig(file)
}

// Timeout is the per request timeout for the remote text provider.
func (o *Options) Timeout() time.Duration {
	if o.RequestTimeout <= 0 {
		return defaultRequestTimeout * time.Second
	}
	return time.Duration(o.RequestTimeout) * time.Second
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, defaultDataDirName)
	}
	return defaultDataDirName
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		absDir, err := filepath.Abs(dataDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err == nil {
		return dataDir, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}

	err := os.MkdirAll(dataDir, 0755)
	if err == nil {
		return dataDir, nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
	}

	// Permission denied, fall back to the user's home directory
	currentUser, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "unable to get current user")
	}
	if currentUser.HomeDir == "" {
		return "", errors.New("unable to get home directory")
	}
	homeData := filepath.Join(currentUser.HomeDir, defaultDataDirName)
	if err := os.MkdirAll(homeData, 0755); err != nil {
		return "", errors.Wrapf(err, "unable to create default data folder %s", homeData)
	}
	return homeData, nil
}
