package constants

// DispatchBot identifies which coaching bot answers a dispatched call
type DispatchBot string

const (
	AppName            = "stride"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/stride/stride.db"
	Version            = "v0.2.0"

	// Backup constants
	MaxBackups       = 14
	BackupFilePrefix = "stride-"

	// Reminder notification constants
	NotifierLockfileName   = "stride-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.stridecoach.stride"

	// Coaching bots
	BotMorning DispatchBot = "morning_bot"
	BotSetup   DispatchBot = "setup_bot"
	BotDayCall DispatchBot = "day_call_bot"
)
