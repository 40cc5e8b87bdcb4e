package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/internal/visibility"
)

func parse(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString("<body>" + markup + "</body>")
	require.NoError(t, err)
	return doc
}

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, code), "err = %v, want code %s", err, code)
}

var allPanels = []PanelKind{
	Menu, Listbox, Combobox, ComboboxList, DisclosurePanel, PopoverPanel,
	PopoverOverlay, DialogOverlay, Dialog, DialogTitle, DialogDescription, RadioGroup,
}

func TestKindNamesAreUnique(t *testing.T) {
	names := []string{}
	for _, kind := range allPanels {
		names = append(names, kind.Name)
	}
	for _, kind := range []TriggerKind{MenuButton, ListboxButton, ComboboxButton, ComboboxInput, DisclosureButton, PopoverButton} {
		names = append(names, kind.Name)
	}
	for _, kind := range []ItemKind{MenuItem, ListboxOption, ComboboxOption} {
		names = append(names, kind.Name)
	}
	for _, kind := range []LabelKind{ListboxLabel, ComboboxLabel, RadioGroupLabel} {
		names = append(names, kind.Name)
	}
	seen := map[string]bool{}
	for _, name := range names {
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate kind name %q", name)
		seen[name] = true
	}
}

func TestPanelUnmountedIffNil(t *testing.T) {
	doc := parse(t, `<div id="x"></div>`)
	present := doc.ByID("x")
	for _, kind := range allPanels {
		t.Run(kind.Name, func(t *testing.T) {
			require.NoError(t, CheckPanel(kind, Options{State: visibility.InvisibleUnmounted}, nil, nil))
			assertCode(t, CheckPanel(kind, Options{State: visibility.InvisibleUnmounted}, present, nil), errors.ErrElementPresent)
			assertCode(t, CheckPanel(kind, Options{State: visibility.Visible}, nil, nil), errors.ErrElementMissing)
			assertCode(t, CheckPanel(kind, Options{State: visibility.InvisibleHidden}, nil, nil), errors.ErrElementMissing)
		})
	}
}

func TestMenuPanel(t *testing.T) {
	doc := parse(t, `
		<div id="m" role="menu" aria-labelledby="b">Item A</div>
		<div id="h" role="menu" aria-labelledby="b" hidden style="display:none">Item A</div>
		<div id="nolabel" role="menu">Item A</div>`)

	require.NoError(t, CheckPanel(Menu, Options{State: visibility.Visible, TextContent: "Item"}, doc.ByID("m"), nil))
	require.NoError(t, CheckPanel(Menu, Options{State: visibility.InvisibleHidden}, doc.ByID("h"), nil))

	assertCode(t, CheckPanel(Menu, Options{State: visibility.InvisibleHidden}, doc.ByID("m"), nil), errors.ErrHiddenMarker)
	assertCode(t, CheckPanel(Menu, Options{State: visibility.Visible}, doc.ByID("nolabel"), nil), errors.ErrAttributeMissing)
	assertCode(t, CheckPanel(Menu, Options{State: visibility.Visible, TextContent: "Item B"}, doc.ByID("m"), nil), errors.ErrTextContent)
	assertCode(t, CheckPanel(Menu, Options{
		State:      visibility.Visible,
		Attributes: map[string]string{"data-open": "true"},
	}, doc.ByID("m"), nil), errors.ErrAttributeValue)
}

func TestListboxOrientation(t *testing.T) {
	doc := parse(t, `
		<ul id="v" role="listbox" aria-labelledby="b" aria-orientation="vertical"></ul>
		<ul id="h" role="listbox" aria-labelledby="b" aria-orientation="horizontal"></ul>`)

	require.NoError(t, CheckPanel(Listbox, Options{State: visibility.Visible}, doc.ByID("v"), nil))
	assertCode(t, CheckPanel(Listbox, Options{State: visibility.Visible}, doc.ByID("h"), nil), errors.ErrAttributeValue)
	require.NoError(t, CheckPanel(Listbox, Options{State: visibility.Visible, Orientation: "horizontal"}, doc.ByID("h"), nil))
}

func TestDialogModal(t *testing.T) {
	doc := parse(t, `
		<div id="open" role="dialog" aria-modal="true"></div>
		<div id="closed" role="dialog" hidden style="display: none"></div>
		<div id="stale" role="dialog" aria-modal="true" hidden style="display: none"></div>`)

	require.NoError(t, CheckPanel(Dialog, Options{State: visibility.Visible}, doc.ByID("open"), nil))
	require.NoError(t, CheckPanel(Dialog, Options{State: visibility.InvisibleHidden}, doc.ByID("closed"), nil))
	assertCode(t, CheckPanel(Dialog, Options{State: visibility.InvisibleHidden}, doc.ByID("stale"), nil), errors.ErrAttributeForbidden)

	doc.ByID("open").RemoveAttribute("aria-modal")
	assertCode(t, CheckPanel(Dialog, Options{State: visibility.Visible}, doc.ByID("open"), nil), errors.ErrAttributeValue)
}

func TestDialogTitleOwner(t *testing.T) {
	doc := parse(t, `
		<div id="d" role="dialog" aria-modal="true" aria-labelledby="t" aria-describedby="other">
			<h2 id="t">Deactivate</h2>
			<p id="desc">This will remove everything</p>
		</div>`)
	dialog := doc.ByID("d")

	require.NoError(t, CheckPanel(DialogTitle, Options{State: visibility.Visible, TextContent: "Deactivate"}, doc.ByID("t"), dialog))
	assertCode(t, CheckPanel(DialogTitle, Options{State: visibility.Visible}, doc.ByID("t"), nil), errors.ErrElementMissing)
	assertCode(t, CheckPanel(DialogDescription, Options{State: visibility.Visible}, doc.ByID("desc"), dialog), errors.ErrLinkage)

	dialog.SetAttribute("aria-describedby", "desc")
	require.NoError(t, CheckPanel(DialogDescription, Options{State: visibility.Visible}, doc.ByID("desc"), dialog))
}

func TestComboboxMultiselectable(t *testing.T) {
	doc := parse(t, `<input id="c" role="combobox">`)
	input := doc.ByID("c")

	require.NoError(t, CheckPanel(Combobox, Options{State: visibility.Visible}, input, nil))
	assertCode(t, CheckPanel(Combobox, Options{State: visibility.Visible, Mode: ModeMultiple}, input, nil), errors.ErrAttributeValue)

	input.SetAttribute("aria-multiselectable", "true")
	require.NoError(t, CheckPanel(Combobox, Options{State: visibility.Visible, Mode: ModeMultiple}, input, nil))
}

func TestTriggerStates(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		state  visibility.State
		code   errors.ErrorCode
	}{
		{name: "open", markup: `<button id="x" aria-haspopup="true" aria-controls="m" aria-expanded="true">Open</button>`, state: visibility.Visible},
		{name: "open but reports collapsed", markup: `<button id="x" aria-haspopup="true" aria-controls="m" aria-expanded="false">Open</button>`, state: visibility.Visible, code: errors.ErrAttributeValue},
		{name: "open without controls", markup: `<button id="x" aria-haspopup="true" aria-expanded="true">Open</button>`, state: visibility.Visible, code: errors.ErrAttributeMissing},
		{name: "hidden", markup: `<button id="x" aria-haspopup="true" aria-controls="m" aria-expanded="false">Open</button>`, state: visibility.InvisibleHidden},
		{name: "unmounted", markup: `<button id="x" aria-haspopup="true" aria-expanded="false">Open</button>`, state: visibility.InvisibleUnmounted},
		{name: "unmounted with controls", markup: `<button id="x" aria-haspopup="true" aria-controls="m" aria-expanded="false">Open</button>`, state: visibility.InvisibleUnmounted, code: errors.ErrAttributeUnexpected},
		{name: "disabled hidden", markup: `<button id="x" aria-haspopup="true" aria-controls="m" disabled>Open</button>`, state: visibility.InvisibleHidden},
		{name: "disabled unmounted", markup: `<button id="x" aria-haspopup="true" disabled>Open</button>`, state: visibility.InvisibleUnmounted},
		{name: "disabled reports false", markup: `<button id="x" aria-haspopup="true" aria-expanded="false" disabled>Open</button>`, state: visibility.InvisibleUnmounted, code: errors.ErrAttributeUnexpected},
		{name: "disabled hidden reports false", markup: `<button id="x" aria-haspopup="true" aria-controls="m" aria-expanded="false" disabled>Open</button>`, state: visibility.InvisibleHidden, code: errors.ErrAttributeUnexpected},
		{name: "no haspopup", markup: `<button id="x" aria-expanded="false">Open</button>`, state: visibility.InvisibleUnmounted, code: errors.ErrAttributeMissing},
		{name: "no id", markup: `<button aria-haspopup="true" aria-expanded="false">Open</button>`, state: visibility.InvisibleUnmounted, code: errors.ErrAttributeMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.markup)
			el, err := doc.Query("//button")
			require.NoError(t, err)
			err = CheckTrigger(MenuButton, Options{State: tt.state, TextContent: "Open"}, el)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, tt.code)
		})
	}
}

func TestTriggerWithoutPopup(t *testing.T) {
	doc := parse(t, `<button id="x" aria-expanded="false">Toggle</button>`)
	el := doc.ByID("x")
	require.NoError(t, CheckTrigger(DisclosureButton, Options{State: visibility.InvisibleUnmounted}, el))
	assertCode(t, CheckTrigger(DisclosureButton, Options{State: visibility.InvisibleUnmounted, TextContent: "Open"}, el), errors.ErrTextContent)
	require.NoError(t, CheckTrigger(ComboboxInput, Options{State: visibility.InvisibleUnmounted, TextContent: "Open"}, el))
	assertCode(t, CheckTrigger(DisclosureButton, Options{State: visibility.Visible}, nil), errors.ErrElementMissing)
}

func TestTriggerUnknownStatePanics(t *testing.T) {
	doc := parse(t, `<button id="x" aria-haspopup="true">Open</button>`)
	assert.Panics(t, func() {
		_ = CheckTrigger(MenuButton, Options{}, doc.ByID("x"))
	})
}

func TestItems(t *testing.T) {
	doc := parse(t, `
		<li id="plain" role="option" tabindex="-1">a</li>
		<li id="selected" role="option" tabindex="-1" aria-selected="true">b</li>
		<li id="unselected" role="option" tabindex="-1" aria-selected="false">c</li>
		<li id="disabled" role="option" aria-disabled="true">d</li>
		<li id="focusable" role="option" tabindex="0">e</li>
		<li id="emptydisabled" role="option" aria-disabled="" tabindex="0">f</li>
		<a id="item" role="menuitem" tabindex="-1">g</a>`)

	tests := []struct {
		name string
		kind ItemKind
		id   string
		opts ItemOptions
		code errors.ErrorCode
	}{
		{name: "listbox selected", kind: ListboxOption, id: "selected", opts: ItemOptions{Selected: Selected}},
		{name: "listbox unselected is absent", kind: ListboxOption, id: "plain", opts: ItemOptions{Selected: Unselected}},
		{name: "listbox unselected with false", kind: ListboxOption, id: "unselected", opts: ItemOptions{Selected: Unselected}, code: errors.ErrAttributeUnexpected},
		{name: "combobox selected", kind: ComboboxOption, id: "selected", opts: ItemOptions{Selected: Selected}},
		{name: "combobox unselected explicit", kind: ComboboxOption, id: "unselected", opts: ItemOptions{Selected: Unselected}},
		{name: "combobox unselected absent", kind: ComboboxOption, id: "plain", opts: ItemOptions{Selected: Unselected}, code: errors.ErrAttributeValue},
		{name: "combobox selected absent", kind: ComboboxOption, id: "plain", opts: ItemOptions{Selected: Selected}, code: errors.ErrAttributeValue},
		{name: "unspecified selection", kind: ComboboxOption, id: "plain"},
		{name: "disabled skips tabindex", kind: ListboxOption, id: "disabled"},
		{name: "tabindex required", kind: ListboxOption, id: "focusable", code: errors.ErrAttributeValue},
		{name: "empty aria-disabled is not disabled", kind: ListboxOption, id: "emptydisabled", code: errors.ErrAttributeValue},
		{name: "wrong role", kind: MenuItem, id: "plain", code: errors.ErrAttributeValue},
		{name: "menu item tag", kind: MenuItem, id: "item", opts: ItemOptions{Tag: "a", Selected: Selected}},
		{name: "menu item wrong tag", kind: MenuItem, id: "item", opts: ItemOptions{Tag: "button"}, code: errors.ErrTagName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckItem(tt.kind, doc.ByID(tt.id), tt.opts)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, tt.code)
		})
	}

	assertCode(t, CheckItem(MenuItem, nil, ItemOptions{}), errors.ErrElementMissing)
}

func TestNoSelected(t *testing.T) {
	doc := parse(t, `
		<li role="option" aria-selected="false">a</li>
		<li role="option" aria-selected="false">b</li>`)
	items, err := doc.QueryAll(`//li`)
	require.NoError(t, err)

	require.NoError(t, NoSelected(ComboboxOption, items))
	assertCode(t, NoSelected(ListboxOption, items), errors.ErrAttributeUnexpected)

	items[1].RemoveAttribute("aria-selected")
	assertCode(t, NoSelected(ComboboxOption, items), errors.ErrAttributeValue)
	require.NoError(t, NoSelected(ListboxOption, nil))
}

func TestLabels(t *testing.T) {
	doc := parse(t, `
		<label id="l">Assignee</label>
		<span>anonymous</span>
		<div id="g" role="radiogroup" aria-labelledby="l"></div>
		<div id="g2" role="radiogroup" aria-labelledby="x"></div>`)
	label := doc.ByID("l")

	require.NoError(t, CheckLabel(ListboxLabel, Options{TextContent: "Assignee", Tag: "label"}, label, nil))
	assertCode(t, CheckLabel(ListboxLabel, Options{Tag: "span"}, label, nil), errors.ErrTagName)

	anon, err := doc.Query(`//span`)
	require.NoError(t, err)
	assertCode(t, CheckLabel(ComboboxLabel, Options{}, anon, nil), errors.ErrAttributeMissing)
	assertCode(t, CheckLabel(ComboboxLabel, Options{}, nil, nil), errors.ErrElementMissing)

	require.NoError(t, CheckLabel(RadioGroupLabel, Options{TextContent: "Assignee"}, label, doc.ByID("g")))
	assertCode(t, CheckLabel(RadioGroupLabel, Options{}, label, doc.ByID("g2")), errors.ErrLinkage)
	assertCode(t, CheckLabel(RadioGroupLabel, Options{}, label, nil), errors.ErrElementMissing)
}

func TestSwitch(t *testing.T) {
	doc := parse(t, `
		<label for="s">Notifications</label>
		<p id="d">Sends email</p>
		<button id="s" role="switch" tabindex="0" aria-checked="true" aria-describedby="d"></button>`)
	sw := doc.ByID("s")

	require.NoError(t, CheckSwitch(doc, SwitchOptions{
		State:       SwitchOn,
		Tag:         "button",
		Label:       "Notifications",
		Description: "Sends email",
	}, sw))
	assertCode(t, CheckSwitch(doc, SwitchOptions{State: SwitchOff}, sw), errors.ErrAttributeValue)
	assertCode(t, CheckSwitch(doc, SwitchOptions{State: SwitchOn, Label: "Alerts"}, sw), errors.ErrLabel)
	assertCode(t, CheckSwitch(doc, SwitchOptions{State: SwitchOn, Description: "Nothing"}, sw), errors.ErrDescription)
	assertCode(t, CheckSwitch(doc, SwitchOptions{State: SwitchOn}, nil), errors.ErrElementMissing)

	sw.SetAttribute("tabindex", "-1")
	assertCode(t, CheckSwitch(doc, SwitchOptions{State: SwitchOn}, sw), errors.ErrAttributeValue)

	sw.SetAttribute("tabindex", "0")
	assert.Panics(t, func() { _ = CheckSwitch(doc, SwitchOptions{}, sw) })
	assert.Equal(t, "On", SwitchOn.String())
	assert.Equal(t, "SwitchState(0)", SwitchState(0).String())
}

const tabsMarkup = `
<div id="list" role="tablist" aria-orientation="horizontal">
	<button id="t1" role="tab" type="button" aria-selected="true" tabindex="0" aria-controls="p1" data-headlessui-index="0">One</button>
	<button id="t2" role="tab" type="button" aria-selected="false" tabindex="-1" aria-controls="p2" data-headlessui-index="1">Two</button>
</div>
<div id="p1" role="tabpanel" aria-labelledby="t1" tabindex="0" data-headlessui-index="0">Panel one</div>
<div id="p2" role="tabpanel" aria-labelledby="t2" tabindex="-1" data-headlessui-index="1">Panel two</div>
<div id="stray">stray</div>`

func tabsFixture(t *testing.T) (*dom.Document, *dom.Element, []*dom.Element, []*dom.Element) {
	t.Helper()
	doc := parse(t, tabsMarkup)
	tabs := []*dom.Element{doc.ByID("t1"), doc.ByID("t2")}
	panels := []*dom.Element{doc.ByID("p1"), doc.ByID("p2")}
	return doc, doc.ByID("list"), tabs, panels
}

func TestTabs(t *testing.T) {
	doc, list, tabs, panels := tabsFixture(t)
	require.NoError(t, CheckTabs(doc, TabsOptions{Active: 0}, list, tabs, panels))

	// Active tab 1 contradicts the rendered roving tabindex.
	assertCode(t, CheckTabs(doc, TabsOptions{Active: 1}, list, tabs, panels), errors.ErrAttributeValue)
	assertCode(t, CheckTabs(doc, TabsOptions{Active: 0, Orientation: "vertical"}, list, tabs, panels), errors.ErrAttributeValue)
	assertCode(t, CheckTabs(doc, TabsOptions{}, nil, tabs, panels), errors.ErrElementMissing)
}

func TestTabsRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *dom.Document)
		code   errors.ErrorCode
	}{
		{
			name:   "tab controls a missing panel",
			mutate: func(doc *dom.Document) { doc.ByID("t2").SetAttribute("aria-controls", "ghost") },
			code:   errors.ErrElementMissing,
		},
		{
			name:   "tab controls an element outside the panel set",
			mutate: func(doc *dom.Document) { doc.ByID("t2").SetAttribute("aria-controls", "stray") },
			code:   errors.ErrMembership,
		},
		{
			name:   "panel labelled by another tab",
			mutate: func(doc *dom.Document) { doc.ByID("p2").SetAttribute("aria-labelledby", "t1") },
			code:   errors.ErrAttributeValue,
		},
		{
			name: "orphan panel",
			mutate: func(doc *dom.Document) {
				doc.ByID("t2").RemoveAttribute("aria-controls")
				doc.ByID("p2").SetAttribute("aria-labelledby", "nobody")
			},
			code: errors.ErrMembership,
		},
		{
			name: "panel tabindex does not follow the active tab",
			mutate: func(doc *dom.Document) {
				doc.ByID("p2").SetAttribute("tabindex", "0")
			},
			code: errors.ErrAttributeValue,
		},
		{
			name:   "tab missing type",
			mutate: func(doc *dom.Document) { doc.ByID("t1").RemoveAttribute("type") },
			code:   errors.ErrAttributeValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, list, tabs, panels := tabsFixture(t)
			tt.mutate(doc)
			assertCode(t, CheckTabs(doc, TabsOptions{Active: 0}, list, tabs, panels), tt.code)
		})
	}
}

func TestTabsWithoutControlsStillChecksPanels(t *testing.T) {
	doc, list, tabs, panels := tabsFixture(t)
	doc.ByID("t2").RemoveAttribute("aria-controls")
	// p2 still names t2, whose aria-controls is now gone.
	assertCode(t, CheckTabs(doc, TabsOptions{Active: 0}, list, tabs, panels), errors.ErrAttributeValue)
}
