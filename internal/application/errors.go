package application

import "errors"

var ErrNoData = errors.New("no market data fetched")
var ErrLowYield = errors.New("insufficient validated rates")
