package env

import (
	"os"
	"path/filepath"
)

// EnvName example: testnet
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName is APP_NAME, or the binary name when unset. example: mint-batch
func AppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return filepath.Base(os.Args[0])
}
