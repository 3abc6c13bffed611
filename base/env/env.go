// Package env reads the deployment identity injected by the orchestrator.
package env

import (
	"os"
)

const defaultAppName = "nftdapp"

// PodName falls back to the host name outside k8s, e.g. dapp-6868d88fbd-bz8zv
func PodName() string {
	if pod := os.Getenv("PODNAME"); pod != "" {
		return pod
	}
	host, _ := os.Hostname()
	return host
}

// EnvName is empty outside a deployed environment, e.g. sepolia
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName e.g. nftdapp
func AppName() string {
	if app := os.Getenv("APP_NAME"); app != "" {
		return app
	}
	return defaultAppName
}
