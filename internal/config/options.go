package config

const (
	defaultLogFile           = "e-verse.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 10
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "127.0.0.1"
	defaultDataDirName       = ".e-verse"
	defaultDBName            = "e-verse.db"
	defaultStorage           = StorageSQLite
	defaultAPIBase           = "https://bolls.life"
	defaultProxyPrefix       = ""
	defaultLanguage          = "English"
	defaultRequestTimeout    = 15
	defaultOffline           = false
	defaultWorkerPoolSize    = 4
	defaultCompressThreshold = 1024
	defaultDictionary        = "BDBT"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Options holds every tunable of the reader. Field tags are mapstructure
// because viper decodes through it.
type Options struct {
	// LogFile is the file to write logs to, relative paths live under Data
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of debug, info, warn, error
	LogLevel          string `mapstructure:"log_level"`
	LogFileMaxSize    int    `mapstructure:"log_file_max_size"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups"`
	LogFileMaxAge     int    `mapstructure:"log_file_max_age"`
	LogCompress       bool   `mapstructure:"log_compress"`
	// Data is the directory holding the database and logs
	Data string `mapstructure:"data"`
	// DSN is the sqlite file backing the persistent store
	DSN string `mapstructure:"dsn_uri"`
	// Storage selects the persistent medium: sqlite or memory
	Storage string `mapstructure:"storage"`
	// APIBase is the root URL of the remote text provider
	APIBase string `mapstructure:"api_base"`
	// ProxyPrefix, when set, is prepended to every escaped outbound URL
	ProxyPrefix string `mapstructure:"proxy_prefix"`
	// Language filters the remote translation catalog
	Language string `mapstructure:"language"`
	// RequestTimeout is the per request timeout in seconds
	RequestTimeout int  `mapstructure:"request_timeout"`
	Offline        bool `mapstructure:"offline"`
	WorkerPoolSize int  `mapstructure:"worker_pool_size"`
	// CompressThreshold is the value size in bytes from which stored values are compressed
	CompressThreshold int    `mapstructure:"compress_threshold"`
	Dictionary        string `mapstructure:"dictionary"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Data:              defaultDataDir(),
		DSN:               "",
		Storage:           defaultStorage,
		APIBase:           defaultAPIBase,
		ProxyPrefix:       defaultProxyPrefix,
		Language:          defaultLanguage,
		RequestTimeout:    defaultRequestTimeout,
		Offline:           defaultOffline,
		WorkerPoolSize:    defaultWorkerPoolSize,
		CompressThreshold: defaultCompressThreshold,
		Dictionary:        defaultDictionary,
		Host:              defaultHost,
		Port:              defaultPort,
	}
	return Opts
}

// defaults is the viper view of GetDefaultOptions, so environment variables
// can override keys that no config file mentions.
func defaults(o *Options) map[string]interface{} {
	return map[string]interface{}{
		"log_file":             o.LogFile,
		"log_level":            o.LogLevel,
		"log_file_max_size":    o.LogFileMaxSize,
		"log_file_max_backups": o.LogFileMaxBackups,
		"log_file_max_age":     o.LogFileMaxAge,
		"log_compress":         o.LogCompress,
		"data":                 o.Data,
		"dsn_uri":              o.DSN,
		"storage":              o.Storage,
		"api_base":             o.APIBase,
		"proxy_prefix":         o.ProxyPrefix,
		"language":             o.Language,
		"request_timeout":      o.RequestTimeout,
		"offline":              o.Offline,
		"worker_pool_size":     o.WorkerPoolSize,
		"compress_threshold":   o.CompressThreshold,
		"dictionary":           o.Dictionary,
		"host":                 o.Host,
		"port":                 o.Port,
	}
}
