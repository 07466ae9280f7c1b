// Package navigation replaces the storefront's ad-hoc string-path event
// dispatch with a fixed table of typed destinations, each declaring whether
// it requires an authenticated session and which sign-in interstitial to
// prompt when it does.
package navigation

import "errors"

type Destination string

const (
	Home               Destination = "home"
	Marketplace        Destination = "marketplace"
	KnowledgeHub       Destination = "knowledge-hub"
	VendorRegistration Destination = "vendor-registration"
	VendorProfile      Destination = "vendor-profile"
	UserProfile        Destination = "user-profile"
	Cart               Destination = "cart"
	Checkout           Destination = "checkout"
	OrderConfirmation  Destination = "order-confirmation"
)

// AuthPrompt names the interstitial shown when an unauthenticated user hits
// a gated destination.
type AuthPrompt string

const (
	PromptNone   AuthPrompt = ""
	PromptSignIn AuthPrompt = "signin"
	PromptSignUp AuthPrompt = "signup"
)

type route struct {
	destination  Destination
	requiresAuth bool
	prompt       AuthPrompt
}

// Vendor registration prompts sign-up rather than sign-in; it is the one
// destination aimed at users without an account yet.
var routes = map[string]route{
	"/":                    {Home, false, PromptNone},
	"/marketplace":         {Marketplace, false, PromptNone},
	"/knowledge-hub":       {KnowledgeHub, false, PromptNone},
	"/vendor-registration": {VendorRegistration, true, PromptSignUp},
	"/vendor/profile":      {VendorProfile, true, PromptSignIn},
	"/user/profile":        {UserProfile, true, PromptSignIn},
	"/cart":                {Cart, false, PromptNone},
	"/checkout":            {Checkout, true, PromptSignIn},
	"/order-confirmation":  {OrderConfirmation, false, PromptNone},
}

var ErrUnknownPath = errors.New("unknown navigation path")

// Resolution is the shell's answer for one path: either a destination to
// render, or the auth prompt to show instead.
type Resolution struct {
	Destination Destination `json:"destination,omitempty"`
	Gated       bool        `json:"gated"`
	Prompt      AuthPrompt  `json:"prompt,omitempty"`
}

// Resolve maps a logical path to its destination. A gated path resolved
// without an authenticated session yields the sign-in prompt instead of the
// destination.
func Resolve(path string, authenticated bool) (Resolution, error) {

	r, ok := routes[path]
	if !ok {
		return Resolution{}, ErrUnknownPath
	}

	if r.requiresAuth && !authenticated {
		return Resolution{Gated: true, Prompt: r.prompt}, nil
	}

	return Resolution{Destination: r.destination, Gated: r.requiresAuth}, nil
}

// RequiresAuth reports whether the path is gated behind a session.
func RequiresAuth(path string) bool {
	r, ok := routes[path]
	return ok && r.requiresAuth
}
