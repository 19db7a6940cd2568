// Package registration drives signal-cli account registration.
//
// The flow is strictly linear:
//
//  1. CheckRegistered: look for account markers on disk, then fall back to
//     `listAccounts` output containing the phone number.
//  2. Register: prompt for a captcha URL and run `register --captcha`.
//  3. Verify: prompt for the SMS code and run `verify`.
//
// Failures are returned as *domain.Failure tagged with a kind (missing input,
// command failure, rate limited). Nothing is retried.
package registration
