package config

import "os"

func IsDebug() bool {
	return os.Getenv("QUAKE_DEBUG") == "1"
}
