// Package config defines configuration structures for the tally CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (TALLY_ prefix)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    Label      string
//	    Interval   time.Duration
//	    CheckEvery int
//	    Segments   int
//	    Window     int
//	    Keep       bool
//	    Bucket     string
//	    Prefix     string
//	    Dir        string
//	}
package config
