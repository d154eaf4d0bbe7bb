/*
hadatetime
Fetches the current date/time sensor state from Home Assistant and
prints it as JSON.
*/
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	hadatetime "github.com/EnvillePlease/openwebui-ha-current-date-time"
)

// Main entry point
func main() {
	godotenv.Load()

	cfg := hadatetime.LoadConfig()
	if len(os.Args) == 2 {
		var err error
		cfg, err = hadatetime.ReadConfig(os.Args[1])
		if err != nil {
			hadatetime.Log.Fatalf("Failed to read config: %v", err)
		}
	} else if len(os.Args) > 2 {
		hadatetime.Log.Fatalf("Usage: %s [config.yaml]", os.Args[0])
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		hadatetime.Log.SetLevel(level)
	}

	result := hadatetime.New(cfg).CurrentDateTime()

	out, err := result.MarshalIndent()
	if err != nil {
		hadatetime.Log.Fatalf("Render result: %v", err)
	}
	fmt.Println(string(out))

	if result.Error != "" {
		os.Exit(1)
	}
}
