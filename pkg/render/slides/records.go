package slides

import "github.com/apgmedia/apgdeck/pkg/content"

// Record is the content one slide consumes. Text fields are looked up by
// name from Strings and Lists; structured elements read the typed fields.
type Record struct {
	Strings map[string]string
	Lists   map[string][]string
	Stats   []content.Stat
	Budget  content.BudgetSummary
	Phases  []content.Phase
	Service content.Service
	Labels  content.ServiceLabels
	Quote   content.Testimonial
	Closing content.Closing
}

// Records splits a deck into per-slide records for the given kind. Most
// kinds yield exactly one record; services yield one per service.
func Records(kind Kind, d content.Deck) []Record {
	switch kind {
	case KindTitle:
		return []Record{{Strings: map[string]string{
			"main":     d.Title.Main,
			"subtitle": d.Title.Subtitle,
			"client":   d.Client.Name,
		}}}
	case KindAbout:
		return []Record{{
			Strings: map[string]string{
				"heading":     d.About.Heading,
				"description": d.About.Description,
				"services":    d.About.Services,
			},
			Stats: d.About.Stats,
		}}
	case KindAnalysis:
		return []Record{{
			Strings: map[string]string{
				"heading":     d.Analysis.Heading,
				"placeholder": d.Analysis.Placeholder,
			},
			Lists: map[string][]string{"points": d.Analysis.Points},
		}}
	case KindSection:
		return []Record{{Strings: map[string]string{
			"number":      d.Section.Number,
			"title":       d.Section.Title,
			"description": d.Section.Description,
		}}}
	case KindService:
		out := make([]Record, len(d.Services))
		for i, svc := range d.Services {
			out[i] = Record{
				Strings: map[string]string{"title": svc.Title},
				Service: svc,
				Labels:  d.Labels,
			}
		}
		return out
	case KindBudget:
		return []Record{{
			Strings: map[string]string{
				"heading":  d.Budget.Heading,
				"footnote": d.Budget.Footnote,
			},
			Budget: d.Budget,
		}}
	case KindTimeline:
		return []Record{{
			Strings: map[string]string{"heading": d.Timeline.Heading},
			Phases:  d.Timeline.Phases,
		}}
	case KindTestimonial:
		return []Record{{Quote: d.Testimonial}}
	case KindClosing:
		return []Record{{Closing: d.Closing}}
	}
	return nil
}
