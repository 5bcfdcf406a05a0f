// Package config provides runtime configuration for loadmon.
//
// Defaults live in defaults.yaml, which is embedded in the binary; no
// configuration file is read from disk. A small set of environment variables
// can override the defaults:
//
//   - LOADMON_PAUSE: "auto", "always" or "never"
//   - LOADMON_TITLE: banner title
//   - LOADMON_SUBTITLE: banner subtitle (set to empty to hide it)
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	pause := cfg.Console.Pause.ShouldPause(term.IsTerminal(int(os.Stdin.Fd())))
//
// Logging verbosity is configured separately through LOADMON_LOG_LEVEL, see
// package logging.
package config
