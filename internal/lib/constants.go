package lib

import "fmt"

const (
	EnvKeyPrefix = "CONGRESSCTL"
)

var (
	LogLevelEnv = fmt.Sprintf("%s_%s", EnvKeyPrefix, "LOG_LEVEL")
)

var (
	ApiKeyEnv = fmt.Sprintf("%s_%s", EnvKeyPrefix, "API_KEY")
	// NativeApiKeyEnv is the variable name used in the upstream API docs
	// and by other client libraries for the same credential.
	NativeApiKeyEnv = "CONGRESS_API_KEY"
)
