// Package screen drives the marketplace UI as a finite state machine over
// named screens. Each screen renders a View from the session and freshly
// queried store data; actions move between screens along a fixed
// transition table.
package screen

// Name identifies one full-screen form
type Name int

const (
	Login Name = iota
	Signup
	Dashboard
	Profile
	PostListing
	Browse
	ComposeMessage
	Messages
	Conversation
	SentMessages
)

var names = map[Name]string{
	Login:          "login",
	Signup:         "signup",
	Dashboard:      "dashboard",
	Profile:        "profile",
	PostListing:    "post_listing",
	Browse:         "browse",
	ComposeMessage: "compose_message",
	Messages:       "messages",
	Conversation:   "conversation",
	SentMessages:   "sent_messages",
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "unknown"
}

// RequiresAuth reports whether the screen needs a logged-in user
func (n Name) RequiresAuth() bool {
	return n != Login && n != Signup
}

var transitions = map[Name][]Name{
	Login:          {Signup, Dashboard},
	Signup:         {Login},
	Dashboard:      {PostListing, Browse, Profile, Messages, Login},
	Profile:        {Dashboard},
	PostListing:    {Dashboard},
	Browse:         {Dashboard, ComposeMessage},
	ComposeMessage: {Messages, Browse},
	Messages:       {Conversation, SentMessages, ComposeMessage, Dashboard},
	Conversation:   {Messages},
	SentMessages:   {Messages},
}

// CanTransition reports whether to is reachable from from in one step.
// Redrawing the current screen is always allowed.
func CanTransition(from, to Name) bool {
	if from == to {
		return true
	}
	for _, target := range transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}
