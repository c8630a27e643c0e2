package capacity

import "errors"

var ErrSoldOut = errors.New("event is sold out")

var ErrCapacityNotFound = errors.New("capacity document not found")

var ErrDocumentNotFound = errors.New("document not found")

var ErrVersionConflict = errors.New("document version conflict")

var ErrStoreUnavailable = errors.New("capacity store unavailable")
