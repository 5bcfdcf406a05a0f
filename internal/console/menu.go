package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/muurk/loadmon/internal/appliance"
	"github.com/muurk/loadmon/internal/logging"
)

// State is a state of the menu loop
type State int

const (
	StateAwaitingChoice State = iota
	StateRegistering
	StateListing
	StateSearching
	StateExiting
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateRegistering:
		return "registering"
	case StateListing:
		return "listing"
	case StateSearching:
		return "searching"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Farewell is printed when the user chooses to exit.
const Farewell = "Exiting program. Goodbye!"

// ChoicePrompt is shown after the menu on every iteration.
const ChoicePrompt = "Enter your choice: "

// StateForChoice maps a menu choice to the state it selects.
func StateForChoice(choice int) (State, error) {
	switch choice {
	case 1:
		return StateRegistering, nil
	case 2:
		return StateListing, nil
	case 3:
		return StateSearching, nil
	case 4:
		return StateExiting, nil
	default:
		return StateAwaitingChoice, appliance.NewInvalidChoiceError(choice)
	}
}

// Options configure a Menu.
type Options struct {
	Title    string // Banner title
	Subtitle string // Banner subtitle; omitted when empty
	Pause    bool   // Wait for Enter after each screen
}

// Menu is the interactive main loop. It owns the appliance store for the
// lifetime of the loop and hands it to each operation.
type Menu struct {
	prompter *Prompter
	store    *appliance.Store
	opts     Options
	state    State
}

// NewMenu creates a menu reading from in and writing to out, operating on store.
func NewMenu(in io.Reader, out io.Writer, store *appliance.Store, opts Options) *Menu {
	return &Menu{
		prompter: NewPrompter(in, out, opts.Pause),
		store:    store,
		opts:     opts,
		state:    StateAwaitingChoice,
	}
}

// State returns the current state
func (m *Menu) State() State {
	return m.state
}

// Run prints the banner and loops until the user chooses to exit. It returns
// nil on exit; the only error is failure to read input, including input
// ending before exit was chosen (which wraps io.EOF).
func (m *Menu) Run() error {
	m.prompter.Print(m.prompter.Styles().RenderBanner(m.opts.Title, m.opts.Subtitle))

	for m.state != StateExiting {
		if err := m.Step(); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("input closed before exit was chosen: %w", err)
			}
			return err
		}
	}
	return nil
}

// Step runs one iteration: show the menu, read a choice and carry it out.
// Invalid entries are reported and leave the menu awaiting a choice.
func (m *Menu) Step() error {
	p := m.prompter
	p.Print(p.Styles().RenderMenu())

	choice, err := p.ReadChoice(ChoicePrompt)
	if err != nil {
		if appliance.IsInvalidInput(err) {
			p.Fail(appliance.UserMessage(err))
			return p.Pause()
		}
		return err
	}

	next, err := StateForChoice(choice)
	if err != nil {
		logging.LogRejectedInput("", fmt.Sprint(choice), err)
		p.Fail(appliance.UserMessage(err))
		return p.Pause()
	}

	m.transition(next)

	switch next {
	case StateRegistering:
		err = RegisterAppliance(p, m.store)
	case StateListing:
		err = ViewAllAppliances(p, m.store)
	case StateSearching:
		err = SearchAppliance(p, m.store)
	case StateExiting:
		p.Println("\n" + Farewell)
		return nil
	}
	if err != nil {
		return err
	}

	m.transition(StateAwaitingChoice)
	return nil
}

func (m *Menu) transition(to State) {
	logging.LogStateChange(m.state.String(), to.String())
	m.state = to
}
