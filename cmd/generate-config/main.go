// Command generate-config prints the default configuration as YAML.
package main

import (
	"os"
	"teenpatti-server/internal/config"

	"gopkg.in/yaml.v2"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
