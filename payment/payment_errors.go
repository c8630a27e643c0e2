package payment

import "errors"

var ErrInvalidSignature = errors.New("invalid webhook signature")

var ErrMalformedPayload = errors.New("malformed webhook payload")

var ErrMissingMetadata = errors.New("missing booking metadata")
