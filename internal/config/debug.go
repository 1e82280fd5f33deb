package config

import "os"

func IsDebug() bool {
	return os.Getenv("BEEDIARY_DEBUG") == "1"
}
