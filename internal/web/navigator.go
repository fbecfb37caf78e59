package web

import (
	"html/template"
)

// Navigator decides how internal links are rendered. The composition root
// picks one from configuration; pages never probe for it.
type Navigator interface {
	// LinkAttrs returns the anchor attributes for an internal link to href.
	LinkAttrs(href string) template.HTMLAttr
	// ClientSide reports whether links are swapped in place by the page script.
	ClientSide() bool
}

// NewNavigator returns the client-side navigator when clientNavigation is
// set and plain hyperlinks otherwise.
func NewNavigator(clientNavigation bool) Navigator {
	if clientNavigation {
		return ClientNavigator{}
	}
	return PlainNavigator{}
}

// ClientNavigator marks links with data-nav so the page script can replace
// the main content without a full reload.
type ClientNavigator struct{}

func (ClientNavigator) LinkAttrs(href string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + template.HTMLEscapeString(href) + `" data-nav`)
}

func (ClientNavigator) ClientSide() bool { return true }

// PlainNavigator renders ordinary hyperlinks.
type PlainNavigator struct{}

func (PlainNavigator) LinkAttrs(href string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + template.HTMLEscapeString(href) + `"`)
}

func (PlainNavigator) ClientSide() bool { return false }

// orPlain falls back to plain hyperlinks when no navigator was supplied.
func orPlain(nav Navigator) Navigator {
	if nav == nil {
		return PlainNavigator{}
	}
	return nav
}
