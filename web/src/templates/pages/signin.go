package pages

import (
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SignIn is the admin sign-in form. email pre-fills after a failed attempt.
func SignIn(email string) g.Node {
	return h.Div(h.Class("card signin"),
		h.H1(g.Text("Admin sign in")),
		h.Form(h.Class("stacked-form"), h.Method("post"), h.Action("/signin"),
			components.TextField("Email", "email", "email", email, true),
			components.TextField("Password", "password", "password", "", true),
			components.Submit("Sign in"),
		),
	)
}
