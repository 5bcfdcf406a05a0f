// Package ui renders the text screens of the loadmon console.
//
// It produces strings only; reading input and deciding what to show is the
// job of package console. Output is plain fixed-width text. Styling uses
// Lipgloss with a renderer bound to the destination writer, so color and
// bold are applied on a terminal and dropped when output is redirected or
// captured in tests.
//
// # Components
//
//   - RenderBanner: program title block shown once at start
//   - RenderMenu: the numbered main menu
//   - RenderSection: '=' framed headings for each operation
//   - RenderTable: the appliance table shared by view-all and search
//
// Example:
//
//	styles := ui.NewStyles(os.Stdout)
//	fmt.Print(styles.RenderSection("Registered Appliances"))
//	fmt.Print(styles.RenderTable(store.All()))
package ui
