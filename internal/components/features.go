package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
	Details     []string
}

var PlatformFeatures = []Feature{
	{
		"lucide--atom", "Quantum-AI Drug Discovery Engine",
		"3D modeling & docking, binding affinity prediction, and quantum-enhanced molecule simulations for unprecedented accuracy.",
		[]string{"3D modeling + docking", "Binding affinity prediction", "Quantum-enhanced molecule simulations"},
	},
	{
		"lucide--flask-round", "Pharmacokinetics & Toxicity Prediction",
		"Advanced screening tools to identify potential issues early in the development process.",
		[]string{"ADMET screening", "Off-target analysis", "ML-based risk scores"},
	},
	{
		"lucide--users", "In-Silico Clinical Trial Simulator",
		"Simulate clinical trials across diverse virtual patient populations to optimize treatment protocols.",
		[]string{"Virtual patient population", "Predict outcomes across demographics", "Optimize dosage & schedule"},
	},
	{
		"lucide--file-text", "Regulatory Prep Tools",
		"Streamline the regulatory submission process with automated documentation and study design.",
		[]string{"Auto-generate preclinical study designs", "Create FDA-friendly documentation", "Track milestones"},
	},
	{
		"lucide--network", "Collaboration + Cloud Lab Integration",
		"Seamlessly collaborate with team members and external partners through our secure platform.",
		[]string{"Invite your team or institution", "Export data to wet-lab partners", "Connect with CROs/CMOs"},
	},
}

// Features lays the first three cards out in a full row and centres the
// rest underneath.
func Features() g.Node {
	split := min(3, len(PlatformFeatures))

	return g.El("section",
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-4"),

			SectionHeading("Our Platform Features", "bg-blue-600"),

			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(PlatformFeatures[:split], featureCard)),
			),

			g.If(len(PlatformFeatures) > split, Div(
				Class("grid md:grid-cols-2 lg:grid-cols-2 gap-8 mt-8 lg:max-w-2xl lg:mx-auto"),
				g.Group(g.Map(PlatformFeatures[split:], featureCard)),
			)),
		),
	)
}

func featureCard(f Feature) g.Node {
	return Div(
		Class("bg-gray-50 p-8 rounded-lg shadow-sm hover:shadow-md transition-shadow reveal"),
		Div(Class("flex justify-center mb-6"), Icon(f.Icon+" w-12 h-12 text-blue-600", "")),
		H3(Class("text-xl font-bold text-gray-900 mb-3 text-center"), g.Text(f.Title)),
		P(Class("text-gray-600 text-center mb-4"), g.Text(f.Description)),
		Ul(
			Class("space-y-2"),
			g.Group(g.Map(f.Details, func(d string) g.Node {
				return Li(
					Class("flex items-center text-gray-700"),
					Div(Class("w-1.5 h-1.5 rounded-full bg-blue-600 mr-2")),
					g.Text(d),
				)
			})),
		),
	)
}
