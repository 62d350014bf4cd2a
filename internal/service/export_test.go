package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

// SetClock pins the service clock for tests and returns a restore func
func SetClock(now time.Time) func() {
	previous := nowFunc
	nowFunc = func() time.Time { return now }
	return func() { nowFunc = previous }
}
