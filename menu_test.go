package ariacheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/ariacheck"
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
)

const openMenu = `<body>
	<button id="headlessui-menu-button-1" type="button" aria-haspopup="true" aria-controls="headlessui-menu-items-2" aria-expanded="true">Options</button>
	<div id="headlessui-menu-items-2" role="menu" aria-labelledby="headlessui-menu-button-1" tabindex="0" aria-activedescendant="headlessui-menu-item-3">
		<a id="headlessui-menu-item-3" role="menuitem" tabindex="-1">Account</a>
		<a id="headlessui-menu-item-4" role="menuitem" tabindex="-1">Support</a>
		<a id="headlessui-menu-item-5" role="menuitem" aria-disabled="true">License</a>
	</div>
</body>`

const closedMenu = `<body>
	<button id="headlessui-menu-button-1" type="button" aria-haspopup="true" aria-expanded="false">Options</button>
</body>`

func newChecker(t *testing.T, markup string) (*ariacheck.Checker, *dom.Document) {
	t.Helper()
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	return ariacheck.New(doc), doc
}

func requireViolation(t *testing.T, err error, code errors.ErrorCode, checker string) *errors.Violation {
	t.Helper()
	v, ok := errors.AsViolation(err)
	require.True(t, ok, "err = %v, want a violation", err)
	assert.Equal(t, string(code), v.Code, "err = %v", err)
	assert.Equal(t, checker, v.Checker)
	return v
}

func TestMenuOpen(t *testing.T) {
	c, _ := newChecker(t, openMenu)

	require.NoError(t, c.AssertMenuButton(ariacheck.Options{State: ariacheck.Visible, TextContent: "Options"}))
	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.Visible}))
	require.NoError(t, c.AssertMenuButtonLinkedWithMenu())

	items := c.GetMenuItems()
	require.Len(t, items, 3)
	for _, item := range items {
		require.NoError(t, c.AssertMenuItem(item, ariacheck.ItemOptions{Tag: "a"}))
	}
	require.NoError(t, c.AssertMenuLinkedWithMenuItem(items[0]))

	err := c.AssertMenuLinkedWithMenuItem(items[1])
	requireViolation(t, err, errors.ErrLinkage, "AssertMenuLinkedWithMenuItem")

	err = c.AssertNoActiveMenuItem()
	requireViolation(t, err, errors.ErrAttributeUnexpected, "AssertNoActiveMenuItem")
}

func TestMenuClosed(t *testing.T) {
	c, _ := newChecker(t, closedMenu)

	require.NoError(t, c.AssertMenuButton(ariacheck.Options{State: ariacheck.InvisibleUnmounted}))
	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.InvisibleUnmounted}))
	assert.Nil(t, c.GetMenu())
	assert.Empty(t, c.GetMenus())

	err := c.AssertMenu(ariacheck.Options{State: ariacheck.Visible})
	requireViolation(t, err, errors.ErrElementMissing, "AssertMenu")

	err = c.AssertMenuButtonLinkedWithMenu()
	requireViolation(t, err, errors.ErrElementMissing, "AssertMenuButtonLinkedWithMenu")

	err = c.AssertNoActiveMenuItem()
	requireViolation(t, err, errors.ErrElementMissing, "AssertNoActiveMenuItem")
}

func TestMenuButtonExpandedFalseWhileMenuVisible(t *testing.T) {
	c, doc := newChecker(t, openMenu)
	button := doc.ByID("headlessui-menu-button-1")
	button.SetAttribute("aria-expanded", "false")

	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.Visible}))

	v := requireViolation(t, c.AssertMenuButton(ariacheck.Options{State: ariacheck.Visible}), errors.ErrAttributeValue, "AssertMenuButton")
	assert.Equal(t, "aria-expanded", v.Attribute)
	assert.Equal(t, "true", v.Expected)
	assert.Equal(t, "false", v.Actual)
	assert.Contains(t, v.Error(), "AssertMenuButton:")
}

func TestMenuDisabledButton(t *testing.T) {
	c, doc := newChecker(t, `<body>
		<button id="headlessui-menu-button-1" aria-haspopup="true" disabled>Options</button>
	</body>`)

	require.NoError(t, c.AssertMenuButton(ariacheck.Options{State: ariacheck.InvisibleUnmounted}))

	doc.ByID("headlessui-menu-button-1").SetAttribute("aria-expanded", "false")
	err := c.AssertMenuButton(ariacheck.Options{State: ariacheck.InvisibleUnmounted})
	v := requireViolation(t, err, errors.ErrAttributeUnexpected, "AssertMenuButton")
	assert.Equal(t, "aria-expanded", v.Attribute)
}

func TestMenuExplicitReferences(t *testing.T) {
	c, doc := newChecker(t, openMenu)
	menu := doc.ByID("headlessui-menu-items-2")

	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.Visible}, menu))

	// An explicit nil is used as given, not resolved.
	err := c.AssertMenu(ariacheck.Options{State: ariacheck.Visible}, nil)
	requireViolation(t, err, errors.ErrElementMissing, "AssertMenu")
	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.InvisibleUnmounted}, nil))

	other := doc.ByID("headlessui-menu-item-3")
	err = c.AssertMenuButtonLinkedWithMenu(c.GetMenuButton(), other)
	requireViolation(t, err, errors.ErrLinkage, "AssertMenuButtonLinkedWithMenu")
}

func TestMenuUnmountIsObserved(t *testing.T) {
	c, doc := newChecker(t, openMenu)
	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.Visible}))

	doc.ByID("headlessui-menu-items-2").Remove()
	require.NoError(t, c.AssertMenu(ariacheck.Options{State: ariacheck.InvisibleUnmounted}))
	assert.Equal(t, ariacheck.InvisibleUnmounted, c.ObserveState(c.GetMenu()))
}

func TestUnknownStatePanics(t *testing.T) {
	c, _ := newChecker(t, openMenu)
	assert.Panics(t, func() { _ = c.AssertMenu(ariacheck.Options{}) })
	assert.Panics(t, func() { _ = c.AssertMenuButton(ariacheck.Options{State: ariacheck.State(9)}) })
}
