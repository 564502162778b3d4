package utils

// Set at build time with -ldflags "-X .../common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}
