package droplet

import (
	"github.com/iov-one/weave/errors"
)

// x/droplet reserves 2100 ~ 2119 error codes.

var (
	ErrSwapPending            = errors.Register(2100, "swap already pending")
	ErrSwapNotAllowed         = errors.Register(2101, "swap not allowed")
	ErrTreasuryInvalid        = errors.Register(2102, "invalid treasury")
	ErrCollectionVerification = errors.Register(2103, "collection verification failed")
	ErrAssetBanned            = errors.Register(2104, "asset banned")
	ErrFeeDistribution        = errors.Register(2105, "fee distribution mismatch")
	ErrCounterOverflow        = errors.Register(2106, "asset counter overflow")
)
