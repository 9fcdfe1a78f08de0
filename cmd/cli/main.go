// Logsift - Offline Log Analysis Engine
//
// Logsift reads a finite service log file, normalizes txt/json/csv lines
// into structured records, and reports per-level counts, per-service
// latency averages, error bursts, and repeated-message anomalies. It also
// ships a synthetic log producer for generating sample inputs.
package main

import (
	"os"

	"logsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
