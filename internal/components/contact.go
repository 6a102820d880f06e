package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Thegreatvegan/Qura/internal/contact"
)

// FormState is what the contact form renders: the values to refill, errors
// keyed by field name, and the outcome of the last submission if any.
type FormState struct {
	Values contact.Submission
	Errors map[string]string
	Result *contact.Result
}

// NewFormState derives the form state after a submission. A successful
// submission clears the fields.
func NewFormState(sub contact.Submission, res contact.Result) FormState {
	state := FormState{Result: &res, Errors: res.FieldErrors()}
	if !res.Success {
		state.Values = sub
	}
	return state
}

type formField struct {
	name        string
	label       string
	inputType   string
	placeholder string
	required    bool
	value       func(contact.Submission) string
}

var formFields = []formField{
	{"name", "Full Name", "text", "Dr. Jane Smith", true, func(s contact.Submission) string { return s.Name }},
	{"email", "Email Address", "email", "jane.smith@research.org", true, func(s contact.Submission) string { return s.Email }},
	{"company", "Organization", "text", "Research Institute", true, func(s contact.Submission) string { return s.Company }},
	{"message", "How would you use our platform?", "textarea", "Tell us about your research and how our platform could help...", false, func(s contact.Submission) string { return s.Message }},
}

func ContactForm(state FormState) g.Node {
	return g.El("section",
		Class("py-20 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),

			SectionHeading("Request Early Access", "bg-blue-600",
				P(
					Class("text-gray-600 max-w-2xl mx-auto"),
					g.Text("Join the pioneers in quantum-enhanced drug discovery. Get early access to Qura's comprehensive platform that's transforming the pharmaceutical research landscape."),
				),
			),

			Div(
				Class("max-w-xl mx-auto bg-white p-8 rounded-lg shadow-md reveal"),

				Div(ID("contact-alert"), g.If(state.Result != nil, resultAlert(state.Result))),

				g.El("form",
					ID("contact-form"),
					g.Attr("method", "post"),
					g.Attr("action", "/contact#contact"),
					g.Attr("novalidate", ""),
					Div(
						Class("grid gap-6"),
						g.Group(g.Map(formFields, func(f formField) g.Node {
							return fieldNode(f, f.value(state.Values), state.Errors[f.name])
						})),
						Button(
							Type("submit"),
							Class("group w-full inline-flex items-center justify-center bg-gradient-to-r from-blue-600 to-purple-600 text-white px-4 py-2 rounded-md disabled:opacity-60"),
							Span(Class("hidden group-disabled:inline mr-2"), Icon("lucide--loader-2 h-4 w-4 animate-spin", "")),
							Span(Class("group-disabled:hidden"), g.Text("Submit Request")),
							Span(Class("hidden group-disabled:inline"), g.Text("Processing...")),
						),
					),
				),
			),
		),
	)
}

func fieldNode(f formField, value, errMsg string) g.Node {
	inputClass := "mt-1 w-full rounded-md border border-gray-300 px-3 py-2 focus:outline-none focus:ring-2 focus:ring-blue-500"
	if errMsg != "" {
		inputClass += " border-red-300 focus:border-red-500 focus:ring-red-500"
	}

	attrs := []g.Node{
		ID(f.name),
		Name(f.name),
		Class(inputClass),
		g.Attr("placeholder", f.placeholder),
		g.If(f.required, g.Attr("required", "")),
		g.If(errMsg != "", g.Attr("aria-invalid", "true")),
	}

	var control g.Node
	if f.inputType == "textarea" {
		control = g.El("textarea", g.Group(attrs), g.Attr("rows", "4"), g.Text(value))
	} else {
		control = Input(g.Group(attrs), Type(f.inputType), Value(value))
	}

	return Div(
		Label(
			g.Attr("for", f.name),
			Class("flex items-center justify-between text-sm font-medium text-gray-700"),
			Span(g.Text(f.label)),
			Span(
				Class("text-xs text-red-500"),
				g.Attr("data-error-for", f.name),
				g.If(errMsg != "", g.Text(errMsg)),
			),
		),
		control,
	)
}

func resultAlert(res *contact.Result) g.Node {
	box, icon, title, titleClass, textClass :=
		"bg-red-50 border-red-200", "lucide--alert-circle h-4 w-4 text-red-600", "Error", "text-red-800", "text-red-700"
	if res.Success {
		box, icon, title, titleClass, textClass =
			"bg-green-50 border-green-200", "lucide--check-circle h-4 w-4 text-green-600", "Success", "text-green-800", "text-green-700"
	}

	return Div(
		Class("mb-6 flex gap-3 rounded-lg border p-4 "+box),
		g.Attr("role", "alert"),
		Icon(icon, ""),
		Div(
			P(Class("font-medium "+titleClass), g.Text(title)),
			P(Class("text-sm "+textClass), g.Text(res.Message)),
		),
	)
}
