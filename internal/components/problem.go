package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Problem struct {
	Icon        string
	Title       string
	Description string
}

var Problems = []Problem{
	{"lucide--clock", "Time-Consuming Process", "Traditional drug discovery takes 10-15 years from initial research to market approval, with countless hours spent on trial and error approaches."},
	{"lucide--ban", "High Failure Rate", "Over 90% of drug candidates fail in clinical trials due to unforeseen side effects or lack of efficacy that weren't predicted in preclinical studies."},
	{"lucide--dollar-sign", "Enormous Cost", "Developing a single new drug costs an average of $2.6 billion, with much of that expense going toward failed candidates and inefficient processes."},
	{"lucide--alert-triangle", "Computational Limitations", "Classical computers cannot accurately simulate complex molecular interactions, leading to approximations that miss critical biological mechanisms."},
}

func ProblemSection() g.Node {
	return g.El("section",
		Class("py-20 bg-white relative"),

		Div(
			Class("absolute inset-0 overflow-hidden pointer-events-none"),
			Div(Class("absolute top-0 right-0 w-1/3 h-1/3 bg-red-50 rounded-full opacity-20 blur-3xl")),
			Div(Class("absolute bottom-0 left-0 w-1/4 h-1/4 bg-red-50 rounded-full opacity-20 blur-3xl")),
		),

		Div(
			Class("container mx-auto px-4 relative z-10"),

			SectionHeading("The Problem", "bg-red-500",
				P(
					Class("text-gray-600 max-w-2xl mx-auto text-lg"),
					g.Text("Drug discovery is fundamentally broken. The traditional approach is slow, expensive, and inefficient, with diminishing returns on R&D investment."),
				),
			),

			Div(
				Class("grid md:grid-cols-2 gap-8"),
				g.Group(g.Map(Problems, func(p Problem) g.Node {
					return Div(
						Class("bg-white p-6 rounded-lg shadow-md border border-gray-100 reveal"),
						Div(
							Class("flex items-start"),
							Div(Class("mr-4"), Icon(p.Icon+" w-10 h-10 text-red-500", "")),
							Div(
								H3(Class("text-xl font-bold text-gray-900 mb-2"), g.Text(p.Title)),
								P(Class("text-gray-600"), g.Text(p.Description)),
							),
						),
					)
				})),
			),

			Div(
				Class("mt-12 text-center reveal"),
				H3(Class("text-2xl font-bold text-gray-900 mb-4"), g.Text("The Future Demands a Quantum Leap")),
				P(
					Class("text-gray-600 max-w-3xl mx-auto"),
					g.Text("Classical computing approaches have reached their limits in drug discovery. Quantum computing offers the computational power needed to accurately model complex biological systems and revolutionize how we discover life-saving medications."),
				),
			),
		),
	)
}
