package config

// Application identity
const (
	AppName    = "todo"
	ConfigName = "todo"
	EnvPrefix  = "TODO"
)

// Storage defaults
const (
	DefaultStoragePath   = ".todo_data.json"
	DefaultStorageFormat = ""
)

// Log defaults
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)
