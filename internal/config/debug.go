package config

import "os"

func IsDebug() bool {
	return os.Getenv("UNDOABLE_DEBUG") == "1"
}
