package screen

// Align places an item on the left or right of the screen
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Style distinguishes how an item is drawn
type Style int

const (
	StylePlain Style = iota
	StyleCard
	StyleMine
	StyleTheirs
)

// Field is one editable form input
type Field struct {
	Key       string
	Label     string
	Value     string
	Secret    bool
	Multiline bool
}

// Action is a button. Submit actions read the form fields first.
type Action struct {
	ID     string
	Label  string
	Submit bool
}

// Item is a block of read-only content with optional inline actions
type Item struct {
	Lines   []string
	Align   Align
	Style   Style
	Actions []Action
}

// View is everything needed to draw one screen
type View struct {
	Screen  Name
	Title   string
	Status  string
	Notice  string
	Error   string // Modal error from the last action
	Empty   string // Shown when Items is empty
	Items   []Item
	Fields  []Field
	Actions []Action
}

// AllActions returns the item actions followed by the screen actions
func (v *View) AllActions() []Action {
	var all []Action
	for _, item := range v.Items {
		all = append(all, item.Actions...)
	}
	return append(all, v.Actions...)
}

// Action looks up an action by id
func (v *View) Action(id string) (Action, bool) {
	for _, a := range v.AllActions() {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Form holds the current values of a screen's fields
type Form map[string]string

func (f Form) clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
