package model

// Page identifies one screen of the front-desk UI.  The set is closed:
// navigation happens by asking the router for a page by name, and every
// known name maps to exactly one Page constant.  Unknown names are handled
// once, at the parse boundary, by falling back to PageHome with a notice —
// inside the application a Page is always one of these values.
type Page string

const (
	PageHome                Page = "home"
	PageVisitorLogin        Page = "visitor-login"
	PageVisitorStep1        Page = "visitor-step1"
	PageVisitorStep2        Page = "visitor-step2"
	PageVisitorStep3        Page = "visitor-step3"
	PageVisitorDashboard    Page = "visitor-dashboard"
	PageConferenceLogin     Page = "conference-login"
	PageConferenceDashboard Page = "conference-dashboard"
	PageConferenceBooking   Page = "conference-booking"
)

// Pages lists every routable page in display order.
var Pages = []Page{
	PageHome,
	PageVisitorLogin,
	PageVisitorStep1,
	PageVisitorStep2,
	PageVisitorStep3,
	PageVisitorDashboard,
	PageConferenceLogin,
	PageConferenceDashboard,
	PageConferenceBooking,
}

// ParsePage resolves a page name from the outside world.  When the name is
// unknown it returns PageHome and ok=false so the caller can attach a
// "page not found" notice instead of failing the request.
func ParsePage(name string) (Page, bool) {
	p := Page(name)
	for _, known := range Pages {
		if p == known {
			return p, true
		}
	}
	return PageHome, false
}

// Protected reports whether the page requires an authenticated admin
// session to render meaningful content.
func (p Page) Protected() bool {
	switch p {
	case PageVisitorDashboard, PageConferenceDashboard, PageConferenceBooking:
		return true
	}
	return false
}
