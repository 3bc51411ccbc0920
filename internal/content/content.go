// Package content holds the static marketing copy shown by the TUI:
// hero line, feature highlights, process steps, FAQ and contact info.
// All of it is process-wide constant data.
package content

// Hero is the one-line pitch shown on the dashboard.
const Hero = "Turn farm waste into energy and income"

// Tagline is the secondary line under the hero.
const Tagline = "Estimate your biogas plant in seconds: output, savings, payback"

// Contact is the static contact line for the footer.
const Contact = "info@biogaz.pro · +998 71 200 00 00 · Tashkent"

// Feature is one highlight card on the landing screen.
type Feature struct {
	Title string
	Body  string
}

// Features lists the product highlights in display order.
var Features = []Feature{
	{
		Title: "Free fuel from waste",
		Body:  "A digester turns manure and food waste into biogas for cooking, heating and power.",
	},
	{
		Title: "Electricity on site",
		Body:  "A small CHP unit covers a farm's base load and cuts the monthly utility bill.",
	},
	{
		Title: "Fertilizer as a bonus",
		Body:  "Digestate, the digester's byproduct, replaces bought mineral fertilizer.",
	},
	{
		Title: "Lower emissions",
		Body:  "Captured methane is burned instead of vented, cutting CO2-equivalent output daily.",
	},
}

// Step is one entry in the how-it-works sequence.
type Step struct {
	Title string
	Body  string
}

// Steps lists the installation process in order.
var Steps = []Step{
	{"Estimate", "Pick your feedstock and daily volume to size the plant."},
	{"Site survey", "Our engineers confirm the layout and utility connections."},
	{"Installation", "The digester and generator are installed in 4-6 weeks."},
	{"Operation", "You feed it daily; we handle service and monitoring."},
}

// FAQ is one question/answer pair for the FAQ accordion.
type FAQ struct {
	Question string
	Answer   string
}

// FAQs lists the frequently asked questions in display order.
var FAQs = []FAQ{
	{
		Question: "How much feedstock do I need?",
		Answer: "Anything from a few hundred kilograms per day is workable. Output scales " +
			"linearly with mass, so use the calculator to see where your farm lands.",
	},
	{
		Question: "What can I feed into the digester?",
		Answer: "Cattle and poultry manure, food waste and mixed organics. Yields differ " +
			"per feedstock; food waste produces roughly three times as much gas per kilogram " +
			"as cattle manure.",
	},
	{
		Question: "How long until the plant pays for itself?",
		Answer: "Typically one to three years depending on feedstock and local energy prices. " +
			"The cashflow tab charts your cumulative balance month by month.",
	},
	{
		Question: "Does it work in winter?",
		Answer: "Yes. The digester is insulated and part of the produced heat keeps the " +
			"process at operating temperature.",
	},
	{
		Question: "What happens to the leftover material?",
		Answer: "The digestate is a stabilized organic fertilizer. Most customers spread it " +
			"on their own fields or sell it to neighbors.",
	},
	{
		Question: "Is the estimate binding?",
		Answer: "No. It is a planning figure based on standard conversion factors. A site " +
			"survey produces the binding quote.",
	},
}
