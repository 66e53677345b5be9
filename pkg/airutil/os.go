package airutil

import "github.com/drone/envsubst"

// ExpandEnv substitutes ${VAR} references with values from the
// environment, so configuration values like the maintainer email can be
// supplied by CI.
func ExpandEnv(s string) string {
	val, _ := envsubst.EvalEnv(s)
	return val
}
