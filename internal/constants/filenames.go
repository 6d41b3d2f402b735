package constants

const (
	// DefaultStubName is the default name of the placeholder file created
	// in each subdirectory
	DefaultStubName = "README.md"

	// ConfigFile is the name of the configuration file
	ConfigFile = "config.toml"

	// LogFile is the name of the rotating log file in the cache directory
	LogFile = "dirkit.log"
)
