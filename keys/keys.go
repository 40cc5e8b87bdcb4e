// Package keys names the keyboard key values interaction code dispatches.
// Values follow https://www.w3.org/TR/uievents-key/#named-key-attribute-values.
package keys

// Key is a KeyboardEvent.key value.
type Key string

const (
	Space      Key = " "
	Enter      Key = "Enter"
	Escape     Key = "Escape"
	Backspace  Key = "Backspace"
	Delete     Key = "Delete"
	ArrowLeft  Key = "ArrowLeft"
	ArrowUp    Key = "ArrowUp"
	ArrowRight Key = "ArrowRight"
	ArrowDown  Key = "ArrowDown"
	Home       Key = "Home"
	End        Key = "End"
	PageUp     Key = "PageUp"
	PageDown   Key = "PageDown"
	Tab        Key = "Tab"
)

// String returns the key value.
func (k Key) String() string { return string(k) }
