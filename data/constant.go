package data

const (
	DateTimePattern        = "2006-01-02 15:04:05"
	DateTimePatternCompact = "20060102150405"

	RunModeDev     = "dev"
	RunModeTest    = "test"
	RunModeRelease = "release"
)
