// Package logging provides structured logging for loadmon.
//
// This package wraps a zap logger with package-level convenience functions
// and a few helpers for the events the console produces. Logging is silent by
// default so that it never interferes with the interactive menu; set
// LOADMON_LOG_LEVEL to "debug", "info", "warn" or "error" to enable it.
// Log output goes to stderr.
//
// # Usage
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogRegistered("Fan", 75, 8, store.Len())
//
// # Events
//
//   - LogRegistered: an appliance was added to the store (info)
//   - LogSearch: a search completed (info)
//   - LogRejectedInput: menu or field input was refused (debug)
//   - LogStateChange: the menu moved between states (debug)
package logging
