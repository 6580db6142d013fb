package conversation

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found in catalog")
	ErrAmbiguousProduct      = errors.New("product reference matches multiple items")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrUnknownBranch         = errors.New("branch not recognized")
	ErrOutOfHours            = errors.New("requested time is outside branch hours")
	ErrInvalidPayment        = errors.New("payment method not recognized")
	ErrAmbiguousModifyTarget = errors.New("modification target unclear")
)
