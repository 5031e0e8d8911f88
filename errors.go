package market

import "errors"

var (
	ErrGoodNotFound = errors.New("good not found")
)
