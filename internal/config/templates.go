package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(dumpTemplate), 0o600)
}

const dumpTemplate = `# decode workers per capture file
workers = 4
# abort a capture file at its first undecodable header
stop_on_error = false
# log every decoded header
verbose = false
# prometheus textfile written after decoding; empty disables it
metrics_file = ""

[log]
level = "info"
timestamp = true
no_color = false
json = false
`
