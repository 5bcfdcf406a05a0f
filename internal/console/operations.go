package console

import (
	"fmt"

	"github.com/muurk/loadmon/internal/appliance"
	"github.com/muurk/loadmon/internal/logging"
	"github.com/muurk/loadmon/internal/ui"
)

// Prompts used by the operations
const (
	NamePrompt   = "Enter appliance name: "
	PowerPrompt  = "Enter power rating (watts, > 0): "
	HoursPrompt  = "Enter daily usage hours (0-24): "
	SearchPrompt = "Enter appliance name to search: "
)

// RegisterAppliance asks for a name, a power rating and daily hours, adds
// the resulting appliance to store and shows it. The numeric prompts repeat
// until valid input is entered; a line may hold both numbers. Only input
// errors are returned.
func RegisterAppliance(p *Prompter, store *appliance.Store) error {
	s := p.Styles()
	p.Print(s.RenderSection("Register New Appliance"))

	name, err := p.ReadLine(NamePrompt)
	if err != nil {
		return fmt.Errorf("failed to read appliance name: %w", err)
	}

	power, err := p.ReadValue(PowerPrompt, appliance.FieldPowerRating, appliance.ParsePowerRating)
	if err != nil {
		return fmt.Errorf("failed to read power rating: %w", err)
	}

	hours, err := p.ReadValue(HoursPrompt, appliance.FieldDailyHours, appliance.ParseDailyHours)
	if err != nil {
		return fmt.Errorf("failed to read daily hours: %w", err)
	}
	p.DiscardLine()

	// Both values passed ReadValue, so New has nothing to clamp.
	a, _ := appliance.New(name, power, hours)
	size := store.Add(a)
	logging.LogRegistered(a.Name(), a.PowerRating(), a.DailyHours(), size)

	p.Println("\n" + s.Success.Render(ui.SuccessMarker+" Appliance registered successfully!"))
	p.Println("\nAppliance Details:")
	p.Println(s.RenderRule("-", ui.DetailWidth))
	p.Println(a.Display())

	return p.Pause()
}

// ViewAllAppliances prints every registered appliance in registration order
// followed by the total, or a notice when nothing is registered.
func ViewAllAppliances(p *Prompter, store *appliance.Store) error {
	s := p.Styles()
	p.Print(s.RenderSection("Registered Appliances"))

	if store.IsEmpty() {
		p.Println(appliance.UserMessage(appliance.NewEmptyStoreError()))
	} else {
		p.Print(s.RenderTable(store.All()))
		p.Println(fmt.Sprintf("\nTotal appliances: %d", store.Len()))
	}

	return p.Pause()
}

// SearchAppliance reads a query and prints the appliances whose names
// contain it, ignoring case. The query is echoed unmodified when nothing
// matches.
func SearchAppliance(p *Prompter, store *appliance.Store) error {
	s := p.Styles()
	p.Print(s.RenderSection("Search Appliance"))

	if store.IsEmpty() {
		p.Println(appliance.UserMessage(appliance.NewEmptyStoreError()))
		return p.Pause()
	}

	query, err := p.ReadLine(SearchPrompt)
	if err != nil {
		return fmt.Errorf("failed to read search query: %w", err)
	}

	found := appliance.Filter(store.All(), query)
	logging.LogSearch(query, len(found), store.Len())

	if len(found) == 0 {
		p.Println("\nNo appliances found with name containing \"" + query + "\".")
	} else {
		p.Println(fmt.Sprintf("\nFound %d matching appliance(s):\n", len(found)))
		p.Print(s.RenderTable(found))
	}

	return p.Pause()
}
