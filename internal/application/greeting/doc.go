// Package greeting builds the responses served by the HTTP API.
//
// The greeting reports the host identity taken from the HOSTNAME
// environment variable, read on every call so that changes to the
// process environment are visible without a restart.
package greeting
