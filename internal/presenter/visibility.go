package presenter

// Masker is a password field that can hide or reveal its content.
type Masker interface {
	SetMasked(bool)
}

// Toggler is the button that switches field visibility.
type Toggler interface {
	SetText(string)
	SetPressed(bool)
}

const (
	ShowLabel = "Show"
	HideLabel = "Hide"
)

// Visibility tracks whether the password is shown in plain text.
// Either slot may be nil.
type Visibility struct {
	Field  Masker
	Button Toggler

	shown bool
}

// NewVisibility binds field and button in the masked, not-pressed state.
func NewVisibility(field Masker, button Toggler) *Visibility {
	v := &Visibility{Field: field, Button: button}
	v.sync()
	return v
}

func (v *Visibility) Shown() bool { return v.shown }

// Set forces the shown state and refreshes the widgets.
func (v *Visibility) Set(shown bool) {
	v.shown = shown
	v.sync()
}

// Toggle flips between masked and plain text.
func (v *Visibility) Toggle() {
	v.Set(!v.shown)
}

func (v *Visibility) sync() {
	if v.Field != nil {
		v.Field.SetMasked(!v.shown)
	}
	if v.Button != nil {
		if v.shown {
			v.Button.SetText(HideLabel)
		} else {
			v.Button.SetText(ShowLabel)
		}
		v.Button.SetPressed(v.shown)
	}
}
