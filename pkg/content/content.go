// Package content defines the descriptive records a deck is built from.
//
// Records carry strings and small lists only. Each slide consumes exactly one
// record; nothing here is shared or mutated between slides.
package content

// Deck is the full content of one proposal.
type Deck struct {
	Client      Client
	Title       Title
	About       About
	Analysis    Analysis
	Section     Section
	Services    []Service
	Labels      ServiceLabels
	Budget      BudgetSummary
	Timeline    Timeline
	Testimonial Testimonial
	Closing     Closing
}

// Client identifies the proposal recipient.
type Client struct {
	Name     string
	Industry string
	Website  string
	Markets  []string
}

// Title is the cover slide copy. Main may contain line breaks.
type Title struct {
	Main     string
	Subtitle string
}

// Stat is one figure on a stat-card row.
type Stat struct {
	Value string
	Label string
}

// About introduces the agency.
type About struct {
	Heading     string
	Description string
	Stats       []Stat
	Services    string
}

// Analysis is a short bullet list of observations.
type Analysis struct {
	Heading     string
	Points      []string
	Placeholder string
}

// Section is a divider slide introducing a group of slides.
type Section struct {
	Number      string
	Title       string
	Description string
}

// Service describes one offered service and its monthly pricing.
type Service struct {
	ID          string
	Title       string
	Description string
	Capability  string
	FunnelStage string
	Budget      string
	Mgmt        string
}

// ServiceLabels are the fixed captions shown on every service slide.
type ServiceLabels struct {
	Capability string
	Budget     string
	Mgmt       string
}

// BudgetSummary is the pricing table with a totals line.
type BudgetSummary struct {
	Heading  string
	Headers  []string
	Rows     [][]string
	Totals   []string
	ColW     []float64
	Footnote string
}

// Phase is one step of the campaign timeline.
type Phase struct {
	Num    string
	Label  string
	Period string
}

// Timeline is the campaign plan.
type Timeline struct {
	Heading string
	Phases  []Phase
}

// Testimonial is a client quote.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// Attribution formats the author line under a quote.
func (t Testimonial) Attribution() string {
	if t.Role == "" {
		return "— " + t.Author
	}
	return "— " + t.Author + ", " + t.Role
}

// Closing is the final call-to-action slide.
type Closing struct {
	Thanks  string
	CTA     string
	Email   string
	Website string
}

// Contact joins the contact lines shown on the closing slide.
func (c Closing) Contact() string {
	switch {
	case c.Email == "":
		return c.Website
	case c.Website == "":
		return c.Email
	}
	return c.Email + "\n" + c.Website
}
