// Package otp generates short-lived numeric verification codes.
//
// Codes are random, not time-based: each one is stored by the caller in an
// expiring store and proves control of an email address exactly once.
package otp
