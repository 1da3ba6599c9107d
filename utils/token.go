package utils

import "math/rand"

const reservationTokenLength = 9

const tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReservationToken returns the single-use code that binds a
// reservation to one advance order: 9 uppercase alphanumeric characters
// from a pseudo-random source. No uniqueness check is made against
// existing reservations; collisions are statistically rare.
func GenerateReservationToken() string {
	buf := make([]byte, reservationTokenLength)
	for i := range buf {
		buf[i] = tokenCharset[rand.Intn(len(tokenCharset))]
	}
	return string(buf)
}
