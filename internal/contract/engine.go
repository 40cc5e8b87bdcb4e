package contract

import (
	"cmp"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/expect"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/visibility"
)

// CheckPanel checks a container against its kind for opts.State. owner is
// only consulted when the kind has an OwnerAttr.
func CheckPanel(kind PanelKind, opts Options, el, owner *dom.Element) error {
	return visibility.Dispatch(opts.State, el, kind.Name, func(state visibility.State) error {
		if kind.OwnerAttr != "" {
			if err := expect.Present(owner, kind.Owner); err != nil {
				return err
			}
			if err := linkage.Owner(owner, kind.OwnerAttr, el); err != nil {
				return err
			}
		}
		for _, name := range kind.Required {
			if err := expect.HasAttr(el, name); err != nil {
				return err
			}
		}
		if kind.Orientation != "" {
			if err := expect.AttrEquals(el, "aria-orientation", cmp.Or(opts.Orientation, kind.Orientation)); err != nil {
				return err
			}
		}
		if kind.Role != "" {
			if err := expect.AttrEquals(el, "role", kind.Role); err != nil {
				return err
			}
		}
		if kind.Modal {
			var err error
			if state == visibility.Visible {
				err = expect.AttrEquals(el, "aria-modal", "true")
			} else {
				err = expect.AttrNotEquals(el, "aria-modal", "true")
			}
			if err != nil {
				return err
			}
		}
		if kind.Multiselectable && state == visibility.Visible && opts.Mode == ModeMultiple {
			if err := expect.AttrEquals(el, "aria-multiselectable", "true"); err != nil {
				return err
			}
		}
		return common(el, opts)
	})
}

// CheckTrigger checks a trigger. The trigger exists in every state; what
// changes is whether it points at a panel and reports itself expanded.
func CheckTrigger(kind TriggerKind, opts Options, el *dom.Element) error {
	if err := expect.Present(el, kind.Name); err != nil {
		return err
	}
	if err := expect.HasAttr(el, "id"); err != nil {
		return err
	}
	if kind.HasPopup {
		if err := expect.HasAttr(el, "aria-haspopup"); err != nil {
			return err
		}
	}
	var err error
	switch opts.State {
	case visibility.Visible:
		err = expect.All(
			func() error { return expect.HasAttr(el, "aria-controls") },
			func() error { return expect.AttrEquals(el, "aria-expanded", "true") },
		)
	case visibility.InvisibleHidden:
		err = expect.All(
			func() error { return expect.HasAttr(el, "aria-controls") },
			func() error { return collapsed(el) },
		)
	case visibility.InvisibleUnmounted:
		err = expect.All(
			func() error { return expect.NoAttr(el, "aria-controls") },
			func() error { return collapsed(el) },
		)
	default:
		visibility.Unreachable(opts.State)
	}
	if err != nil {
		return err
	}
	if kind.IgnoreText {
		opts.TextContent = ""
	}
	return common(el, opts)
}

// collapsed is the closed-trigger rule: a disabled trigger reports no
// expanded state at all, an enabled one reports "false".
func collapsed(el *dom.Element) error {
	if el.HasAttribute("disabled") {
		return expect.NoAttr(el, "aria-expanded")
	}
	return expect.AttrEquals(el, "aria-expanded", "false")
}

// CheckItem checks an option or menu item.
func CheckItem(kind ItemKind, el *dom.Element, opts ItemOptions) error {
	if err := expect.Present(el, kind.Name); err != nil {
		return err
	}
	if err := expect.HasAttr(el, "id"); err != nil {
		return err
	}
	if err := expect.AttrEquals(el, "role", kind.Role); err != nil {
		return err
	}
	if disabled, _ := el.Attr("aria-disabled"); disabled == "" {
		if err := expect.AttrEquals(el, "tabindex", "-1"); err != nil {
			return err
		}
	}
	if err := expect.Attrs(el, opts.Attributes); err != nil {
		return err
	}
	if err := expect.Tag(el, opts.Tag); err != nil {
		return err
	}
	return selection(kind.Selection, el, opts.Selected)
}

func selection(rule SelectionRule, el *dom.Element, want Selection) error {
	if want == SelectionUnspecified || rule == SelectionNone {
		return nil
	}
	switch want {
	case Selected:
		return expect.AttrEquals(el, "aria-selected", "true")
	case Unselected:
		if rule == SelectionPresence {
			return expect.NoAttr(el, "aria-selected")
		}
		return expect.AttrEquals(el, "aria-selected", "false")
	default:
		visibility.Unreachable(want)
		return nil
	}
}

// NoSelected checks that none of items is selected under the kind's rule.
func NoSelected(kind ItemKind, items []*dom.Element) error {
	for _, item := range items {
		if err := selection(kind.Selection, item, Unselected); err != nil {
			return err
		}
	}
	return nil
}

// CheckLabel checks a label and, when the kind has one, that its owner
// references it.
func CheckLabel(kind LabelKind, opts Options, el, owner *dom.Element) error {
	if err := expect.Present(el, kind.Name); err != nil {
		return err
	}
	if kind.OwnerAttr != "" {
		if err := expect.Present(owner, kind.Owner); err != nil {
			return err
		}
		if err := linkage.Owner(owner, kind.OwnerAttr, el); err != nil {
			return err
		}
	} else if err := expect.HasAttr(el, "id"); err != nil {
		return err
	}
	return common(el, opts)
}

func common(el *dom.Element, opts Options) error {
	if err := expect.TextContains(el, opts.TextContent); err != nil {
		return err
	}
	if err := expect.Tag(el, opts.Tag); err != nil {
		return err
	}
	return expect.Attrs(el, opts.Attributes)
}
