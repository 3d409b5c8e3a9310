package screen

import (
	"fmt"
	"strconv"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
)

const timestampLayout = "2006-01-02 15:04:05"

func (c *Controller) openCompose(recipientEmail, listingID string) error {
	if err := c.Navigate(ComposeMessage); err != nil {
		return err
	}
	c.form = Form{
		"recipient": recipientEmail,
		"listing":   listingID,
	}
	return nil
}

func (c *Controller) composeView(v *View) {
	v.Title = "Compose Message"
	v.Fields = []Field{
		c.field("recipient", "Recipient's Email"),
		{Key: "text", Label: "Message Text", Value: c.form["text"], Multiline: true},
		c.field("listing", "Listing ID (Optional)"),
	}
	v.Actions = []Action{
		{ID: ActSendMessage, Label: "Send Message", Submit: true},
		{ID: ActMessages, Label: "Back to Messages"},
		{ID: ActBackToBrowse, Label: "Back to Browse Listings"},
	}
}

func (c *Controller) sendMessage() error {
	uid, err := c.userID()
	if err != nil {
		return err
	}

	if _, err := c.svc.Messages.Send(uid, c.form["recipient"], c.form["text"], c.form["listing"]); err != nil {
		return err
	}

	c.form["text"] = ""
	c.notice = "Message sent successfully!"
	return nil
}

func (c *Controller) messagesView(v *View) error {
	v.Title = "Your Messages"
	v.Empty = "No conversations yet."
	v.Actions = []Action{
		{ID: ActCompose, Label: "New Message"},
		{ID: ActSentMessages, Label: "Sent Messages"},
		{ID: ActDashboard, Label: "Back to Dashboard"},
	}

	uid, err := c.userID()
	if err != nil {
		return err
	}
	partners, err := c.svc.Messages.Partners(uid)
	if err != nil {
		return err
	}

	for _, p := range partners {
		v.Items = append(v.Items, Item{
			Actions: []Action{{
				ID:    fmt.Sprintf("%s:%d", ActOpenPartner, p.ID),
				Label: fmt.Sprintf("%s (%s)", p.Name, p.Email),
			}},
		})
	}
	return nil
}

// openConversation only opens threads with users the current user has
// actually exchanged messages with.
func (c *Controller) openConversation(arg string) error {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return ErrPartnerNotFound
	}

	uid, err := c.userID()
	if err != nil {
		return err
	}
	partners, err := c.svc.Messages.Partners(uid)
	if err != nil {
		return err
	}

	for _, p := range partners {
		if uint64(p.ID) == id {
			partner := p
			if err := c.Navigate(Conversation); err != nil {
				return err
			}
			c.partner = &partner
			return nil
		}
	}
	return ErrPartnerNotFound
}

func (c *Controller) conversationView(v *View) error {
	v.Actions = []Action{
		{ID: ActReply, Label: "Send", Submit: true},
		{ID: ActMessages, Label: "Back to Messages"},
	}
	v.Fields = []Field{{Key: "text", Label: "Message", Value: c.form["text"], Multiline: true}}

	if c.partner == nil {
		v.Title = "Conversation"
		return ErrPartnerNotFound
	}
	v.Title = "Conversation with " + c.partner.Name

	uid, err := c.userID()
	if err != nil {
		return err
	}
	history, err := c.svc.Messages.Conversation(uid, c.partner.ID)
	if err != nil {
		return err
	}

	for _, m := range history {
		v.Items = append(v.Items, bubble(m, uid))
	}
	return nil
}

// bubble draws the current user's messages on the right
func bubble(m models.Message, self uint) Item {
	item := Item{
		Lines: []string{
			fmt.Sprintf("%s: %s", m.Sender.Name, m.Text),
			m.Timestamp.Format(timestampLayout),
		},
		Align: AlignLeft,
		Style: StyleTheirs,
	}
	if m.SenderID == self {
		item.Align = AlignRight
		item.Style = StyleMine
	}
	return item
}

func (c *Controller) reply() error {
	uid, err := c.userID()
	if err != nil {
		return err
	}
	if c.partner == nil {
		return ErrPartnerNotFound
	}

	if _, err := c.svc.Messages.Reply(uid, c.partner.ID, c.form["text"]); err != nil {
		return err
	}

	c.form["text"] = ""
	c.notice = "Message sent successfully!"
	return nil
}

func (c *Controller) sentView(v *View) error {
	v.Title = "Sent Messages"
	v.Empty = "No sent messages."
	v.Actions = []Action{{ID: ActMessages, Label: "Back to Messages"}}

	uid, err := c.userID()
	if err != nil {
		return err
	}
	sent, err := c.svc.Messages.Sent(uid)
	if err != nil {
		return err
	}

	for _, m := range sent {
		v.Items = append(v.Items, Item{
			Lines: []string{
				fmt.Sprintf("To: %s | Listing: %s | Date: %s",
					m.Receiver.Name, m.ListingTitle("Unknown Listing"), m.Timestamp.Format(timestampLayout)),
				"Message: " + m.Text,
			},
		})
	}
	return nil
}
