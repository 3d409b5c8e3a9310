package screen

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
	"github.com/SoyOusa/localcommunitymarketplace/internal/imagecache"
	"github.com/SoyOusa/localcommunitymarketplace/internal/session"
)

var (
	ErrUnknownAction    = errors.New("action not available on this screen")
	ErrTransitionDenied = errors.New("screen not reachable from here")
	ErrPartnerNotFound  = errors.New("conversation partner not found")
)

// Action ids
const (
	ActLogin         = "login"
	ActSignup        = "signup"
	ActGoSignup      = "go-signup"
	ActBackToLogin   = "back-login"
	ActPostListing   = "post-listing"
	ActBrowse        = "browse"
	ActProfile       = "profile"
	ActMessages      = "messages"
	ActLogout        = "logout"
	ActUpdateProfile = "update-profile"
	ActSubmitListing = "submit-listing"
	ActDashboard     = "dashboard"
	ActNextPage      = "next"
	ActPreviousPage  = "previous"
	ActSort          = "sort"           // sort:<key>
	ActMessageSeller = "message-seller" // message-seller:<listing id>
	ActSendMessage   = "send"
	ActBackToBrowse  = "back-browse"
	ActOpenPartner   = "open" // open:<user id>
	ActSentMessages  = "sent"
	ActCompose       = "compose"
	ActReply         = "reply"
)

// Services bundles the business services the screens call
type Services struct {
	Auth     service.AuthService
	Users    service.UserService
	Listings service.ListingService
	Messages service.MessageService
}

// Controller owns the current screen, its form state and the session
type Controller struct {
	svc     Services
	session *session.Session
	images  *imagecache.Cache
	logger  *slog.Logger

	current Name
	form    Form
	partner *models.Partner
	notice  string
	errMsg  string
}

// NewController starts on the login screen with nobody logged in
func NewController(svc Services, sess *session.Session, images *imagecache.Cache, logger *slog.Logger) *Controller {
	return &Controller{
		svc:     svc,
		session: sess,
		images:  images,
		logger:  logger,
		current: Login,
		form:    Form{},
	}
}

// Current returns the screen being shown
func (c *Controller) Current() Name {
	return c.current
}

// Session exposes the controller's session
func (c *Controller) Session() *session.Session {
	return c.session
}

// Form returns a copy of the current form values
func (c *Controller) Form() Form {
	return c.form.clone()
}

// View renders the current screen from fresh store data
func (c *Controller) View() *View {
	if c.current.RequiresAuth() && !c.session.Authenticated() {
		c.forceLogin()
		c.errMsg = userMessage(session.ErrNotAuthenticated)
	}

	v := &View{
		Screen: c.current,
		Notice: c.notice,
		Error:  c.errMsg,
	}

	var err error
	switch c.current {
	case Login:
		c.loginView(v)
	case Signup:
		c.signupView(v)
	case Dashboard:
		c.dashboardView(v)
	case Profile:
		err = c.profileView(v)
	case PostListing:
		c.postListingView(v)
	case Browse:
		err = c.browseView(v)
	case ComposeMessage:
		c.composeView(v)
	case Messages:
		err = c.messagesView(v)
	case Conversation:
		err = c.conversationView(v)
	case SentMessages:
		err = c.sentView(v)
	}

	if err != nil {
		v.Error = c.describe(err)
	}
	return v
}

// Dispatch runs the action with the submitted field values. Errors are
// also recorded as the next view's modal message; the form keeps its
// values.
func (c *Controller) Dispatch(actionID string, values Form) error {
	c.notice, c.errMsg = "", ""

	if c.current.RequiresAuth() {
		if _, err := c.session.RequireUser(); err != nil {
			c.logger.Warn("⚠️ [Screen] Action without login", "screen", c.current.String(), "action", actionID)
			c.forceLogin()
			c.errMsg = userMessage(err)
			return err
		}
	}

	for k, v := range values {
		c.form[k] = v
	}

	name, arg, _ := strings.Cut(actionID, ":")
	err := c.handle(name, arg)
	if err != nil {
		c.errMsg = c.describe(err)
	}
	return err
}

// Navigate tears down the current screen and shows to
func (c *Controller) Navigate(to Name) error {
	if !CanTransition(c.current, to) {
		c.logger.Warn("⚠️ [Screen] Transition denied", "from", c.current.String(), "to", to.String())
		return ErrTransitionDenied
	}
	if to.RequiresAuth() && !c.session.Authenticated() {
		c.forceLogin()
		return session.ErrNotAuthenticated
	}

	c.logger.Debug("🧭 [Screen] Navigating", "from", c.current.String(), "to", to.String(), "session_id", c.session.ID())
	c.teardown()
	c.current = to
	return nil
}

func (c *Controller) handle(name, arg string) error {
	switch c.current {
	case Login:
		switch name {
		case ActLogin:
			return c.login()
		case ActGoSignup:
			return c.Navigate(Signup)
		}
	case Signup:
		switch name {
		case ActSignup:
			return c.signup()
		case ActBackToLogin:
			return c.Navigate(Login)
		}
	case Dashboard:
		switch name {
		case ActPostListing:
			return c.Navigate(PostListing)
		case ActBrowse:
			return c.Navigate(Browse)
		case ActProfile:
			return c.openProfile()
		case ActMessages:
			return c.Navigate(Messages)
		case ActLogout:
			return c.logout()
		}
	case Profile:
		switch name {
		case ActUpdateProfile:
			return c.updateProfile()
		case ActDashboard:
			return c.Navigate(Dashboard)
		}
	case PostListing:
		switch name {
		case ActSubmitListing:
			return c.submitListing()
		case ActDashboard:
			return c.Navigate(Dashboard)
		}
	case Browse:
		switch name {
		case ActNextPage:
			return c.nextPage()
		case ActPreviousPage:
			return c.previousPage()
		case ActSort:
			return c.sortBy(arg)
		case ActMessageSeller:
			return c.messageSeller(arg)
		case ActDashboard:
			return c.Navigate(Dashboard)
		}
	case ComposeMessage:
		switch name {
		case ActSendMessage:
			return c.sendMessage()
		case ActMessages:
			return c.Navigate(Messages)
		case ActBackToBrowse:
			return c.Navigate(Browse)
		}
	case Messages:
		switch name {
		case ActOpenPartner:
			return c.openConversation(arg)
		case ActSentMessages:
			return c.Navigate(SentMessages)
		case ActCompose:
			return c.openCompose("", "")
		case ActDashboard:
			return c.Navigate(Dashboard)
		}
	case Conversation:
		switch name {
		case ActReply:
			return c.reply()
		case ActMessages:
			return c.Navigate(Messages)
		}
	case SentMessages:
		if name == ActMessages {
			return c.Navigate(Messages)
		}
	}
	return ErrUnknownAction
}

// teardown releases everything owned by the screen being left
func (c *Controller) teardown() {
	c.images.Release()
	c.form = Form{}
	c.partner = nil
}

func (c *Controller) forceLogin() {
	c.teardown()
	c.current = Login
}

func (c *Controller) userID() (uint, error) {
	return c.session.RequireUser()
}

// describe turns err into a modal message, logging anything unexpected
func (c *Controller) describe(err error) string {
	msg := userMessage(err)
	if msg == msgUnexpected {
		c.logger.Error("❌ [Screen] Unexpected error",
			"screen", c.current.String(),
			"session_id", c.session.ID(),
			"error", err,
		)
	}
	return msg
}

func (c *Controller) field(key, label string) Field {
	return Field{Key: key, Label: label, Value: c.form[key]}
}
