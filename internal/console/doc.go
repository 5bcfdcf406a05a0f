// Package console implements the interactive appliance menu.
//
// The menu is a small state machine driven by blocking line reads:
//
//	AwaitingChoice ──1──▶ Registering ──┐
//	               ──2──▶ Listing     ──┼──▶ AwaitingChoice
//	               ──3──▶ Searching   ──┘
//	               ──4──▶ Exiting (terminal)
//
// Non-numeric input and choices outside 1-4 are reported and leave the menu
// awaiting a choice. During registration the power rating and daily hours
// prompts repeat until a valid value is entered. Numbers are taken from the
// start of what was typed, so "100W" reads as 100 and one line may carry both
// the power rating and the daily hours. Nothing the user types ends
// the program except choosing 4; only a closed input stream makes Run return
// an error.
//
// The appliance store is owned by the caller and passed to NewMenu, which
// hands it to each operation.
//
//	store := appliance.NewStore()
//	menu := console.NewMenu(os.Stdin, os.Stdout, store, console.Options{
//	    Title: "ELECTRICAL LOAD MONITORING SIMULATOR",
//	    Pause: true,
//	})
//	if err := menu.Run(); err != nil {
//	    return err
//	}
package console
