package content

// Example returns the sample client proposal used when no client-specific
// content has been prepared. Placeholders in braces are meant to be replaced.
func Example() Deck {
	return Deck{
		Client: Client{
			Name:     "{{KLIENTO PAVADINIMAS}}",
			Industry: "{{INDUSTRIJA}}",
			Website:  "{{SVETAINĖ}}",
			Markets:  []string{"Lietuva"},
		},
		Title: Title{
			Main:     "SKAITMENINĖS RINKODAROS\nPASIŪLYMAS",
			Subtitle: "APG Media | 2026",
		},
		About: About{
			Heading:     "Apie APG Media",
			Description: "Skaitmeninės rinkodaros agentūra, fokusuojasi į rezultatus: Google Ads, Meta reklama, SEO, LinkedIn automatizacija.",
			Stats: []Stat{
				{Value: "50+", Label: "KLIENTŲ"},
				{Value: "5.2x", Label: "VID. ROAS"},
				{Value: "€2.10", Label: "VID. CPA"},
			},
			Services: "Google Ads  •  Meta Ads  •  SEO / PR  •  YouTube  •  LinkedIn  •  Retargeting",
		},
		Analysis: Analysis{
			Heading: "Jūsų situacijos analizė",
			Points: []string{
				"Dabartinis skaitmeninis buvimas reikalauja optimizacijos",
				"Konkurentai aktyviai investuoja į online kanalus",
				"Retargeting ir remarketing galimybės neišnaudotos",
				"Didelė galimybė pasiekti tikslinių auditoriją",
			},
			Placeholder: "ANALIZĖS\nVIZUALIZACIJA",
		},
		Section: Section{
			Number:      "02",
			Title:       "PASLAUGOS IR\nSPRENDIMAI",
			Description: "Integruotas skaitmeninių kanalų rinkinys jūsų augimui",
		},
		Services: []Service{
			{
				ID:          "facebook_group_ads",
				Title:       "Facebook Group Ads",
				Description: "Tikslinė reklama Facebook grupių nariams naudojant custom ir look-a-like auditorijas.",
				Capability:  "Galime pasirinkti tikslinių Facebook grupių narius. Pagal pasirinktų grupių dalyvius sukuriamos custom ir Look-a-like auditorijos.",
				FunnelStage: "Žinomumo didinimo fazė",
				Budget:      "€2,000/mėn",
				Mgmt:        "€1,000/mėn",
			},
			{
				ID:          "google_display_ads",
				Title:       "Google Display Ads",
				Description: "Display reklamos rodymas auditorijoms pagal tikslines svetaines ir paieškos frazes.",
				Capability:  "Galime rodyti reklamą pagal konkurentų svetaines ir paieškos ketinimus.",
				FunnelStage: "Svarstymo ir apsisprendimo fazė",
				Budget:      "€1,000/mėn",
				Mgmt:        "€900/mėn",
			},
		},
		Labels: ServiceLabels{
			Capability: "TECHNINĖ GALIMYBĖ",
			Budget:     "REKLAMOS BIUDŽETAS",
			Mgmt:       "ADMINISTRAVIMAS",
		},
		Budget: BudgetSummary{
			Heading: "Biudžeto suvestinė",
			Headers: []string{"PASLAUGA", "REKLAMOS BIUDŽETAS", "ADMINISTRAVIMAS", "VIENKARTINIAI"},
			Rows: [][]string{
				{"Facebook Group Ads", "€2,000", "€1,000", "—"},
				{"Google Display Ads", "€1,000", "€900", "—"},
				{"Retargeting", "€1,000", "€0*", "—"},
			},
			Totals:   []string{"VISO", "€4,000", "€1,900", "—"},
			ColW:     []float64{3.0, 2.0, 2.0, 1.6},
			Footnote: "* Administravimas nemokamas užsakant kartu su Google kampanijomis.",
		},
		Timeline: Timeline{
			Heading: "Kampanijos planas",
			Phases: []Phase{
				{Num: "1", Label: "SETUP", Period: "1–2 sav."},
				{Num: "2", Label: "LAUNCH", Period: "3–4 sav."},
				{Num: "3", Label: "OPTIMIZE", Period: "5–8 sav."},
				{Num: "4", Label: "SCALE", Period: "3+ mėn."},
			},
		},
		Testimonial: Testimonial{
			Quote:  "Per 3 mėnesius su APG Media mūsų pardavimai išaugo 340%. Tai geriausias sprendimas, kurį priėmėme.",
			Author: "Jonas Jonaitis",
			Role:   "CEO, Pavyzdinė Įmonė",
		},
		Closing: Closing{
			Thanks:  "AČIŪ.",
			CTA:     "Pasiruošę augti?",
			Email:   "info@apgmedia.lt",
			Website: "apgmedia.lt",
		},
	}
}
