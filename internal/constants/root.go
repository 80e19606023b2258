package constants

const (
	AppName            = "habitlit"
	Version            = "v0.1.0"
	DefaultConfigPath  = "~/.config/habitlit/habitlit.db"
	DefaultKeyringUser = "database-connection"

	// KeyringConfigValue selects the PostgreSQL connection string stored in the OS keyring.
	KeyringConfigValue = "keyring"
	// MemoryConfigValue selects a throwaway in-memory store.
	MemoryConfigValue = ":memory:"

	// EnvConfig and friends are read by kong (after .env is loaded).
	EnvConfig       = "HABITLIT_CONFIG"
	EnvDebug        = "HABITLIT_DEBUG"
	EnvTimezone     = "HABITLIT_TIMEZONE"
	EnvDBConnection = "HABITLIT_DB_CONNECTION"

	// Store keys
	HabitsKey        = "habits"
	LastSavedDateKey = "lastSavedDate"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ISOTimestampFormat matches the ISO-8601 UTC form with millisecond precision,
	// e.g. 2024-03-01T08:15:00.000Z.
	ISOTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitlit-"
	BackupFileSuffix = ".db"

	// LockfileName is created next to the store while a process owns it.
	LockfileName = "habitlit.lock"

	// Logging
	LogDirName  = "logs"
	LogFileName = "habitlit.log"
)
