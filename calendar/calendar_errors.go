package calendar

import "errors"

var ErrEventNotFound = errors.New("calendar event not found")

var ErrProviderUnavailable = errors.New("calendar provider unavailable")
