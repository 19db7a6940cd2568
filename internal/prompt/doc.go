// Package prompt is the operator-facing console: it asks for the captcha URL
// and SMS code on stdin and prints coloured status lines on stdout.
package prompt
