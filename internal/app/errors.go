package app

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("operation not permitted")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrPostTitleExists    = errors.New("a post with the same title already exists")
	ErrSubscriptionExists = errors.New("subscription already exists")
	ErrSelfSubscription   = errors.New("cannot subscribe to yourself")
	ErrSubscriptionLimit  = errors.New("subscription limit reached")
	ErrInvalidCredential  = errors.New("incorrect username or password")
)
