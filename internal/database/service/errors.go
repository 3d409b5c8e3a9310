package service

import "errors"

// Service errors
var (
	ErrMissingFields       = errors.New("all fields are required")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordTooLong     = errors.New("password is longer than 72 bytes")
	ErrListingFields       = errors.New("title, price, and category are required")
	ErrInvalidPrice        = errors.New("price must be a non-negative number")
	ErrLocationUnavailable = errors.New("unable to fetch user location")
	ErrEmptyMessage        = errors.New("message text cannot be empty")
	ErrRecipientRequired   = errors.New("recipient email cannot be empty")
	ErrRecipientNotFound   = errors.New("recipient email does not exist")
	ErrSelfRecipient       = errors.New("cannot send a message to yourself")
	ErrInvalidListingID    = errors.New("listing id must be a number")
	ErrListingNotFound     = errors.New("listing does not exist")
	ErrPictureUnavailable  = errors.New("failed to update profile picture")
)
