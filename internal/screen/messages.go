package screen

import (
	"errors"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
	"github.com/SoyOusa/localcommunitymarketplace/internal/session"
)

const (
	msgUnexpected        = "Something went wrong. Please try again."
	msgImageNotAvailable = "[Image Not Available]"
)

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrMissingFields, "All fields are required!"},
	{service.ErrEmailAlreadyExists, "Email already exists."},
	{service.ErrInvalidCredentials, "Invalid email or password."},
	{service.ErrPasswordTooLong, "Password must be at most 72 bytes long."},
	{service.ErrListingFields, "Title, Price, and Category are required!"},
	{service.ErrInvalidPrice, "Price must be a non-negative number."},
	{service.ErrLocationUnavailable, "Unable to fetch user location."},
	{service.ErrEmptyMessage, "Message text cannot be empty."},
	{service.ErrRecipientRequired, "Recipient email cannot be empty."},
	{service.ErrRecipientNotFound, "Recipient email does not exist."},
	{service.ErrSelfRecipient, "You cannot send a message to yourself."},
	{service.ErrInvalidListingID, "Listing ID must be a number."},
	{service.ErrListingNotFound, "Listing does not exist."},
	{service.ErrPictureUnavailable, "Failed to update profile picture: the file is not a readable image."},
	{session.ErrNotAuthenticated, "Please log in to continue."},
	{ErrUnknownAction, "That action is not available here."},
	{ErrTransitionDenied, "That screen is not available from here."},
	{ErrPartnerNotFound, "Conversation not found."},
}

// userMessage maps err to the text shown in the modal dialog
func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return msgUnexpected
}
