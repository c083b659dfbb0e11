// Package account contains the identity side of the domain: the Role enum,
// the User aggregate with its credential and email-verification state, the
// one-time Verification code, and the Caller identity context that every
// authenticated operation receives.
package account
