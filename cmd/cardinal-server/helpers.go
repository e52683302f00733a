package main

import "strings"

// toConfigKey maps an environment variable name to its configuration key:
// CARDINAL_MAX_CONNECTIONS becomes "max_connections".
func toConfigKey(envVar, prefix string) string {
	return strings.ToLower(strings.TrimPrefix(envVar, prefix))
}
