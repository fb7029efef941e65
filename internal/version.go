// Package internal holds values shared across all koelner packages.
package internal

// Version is the koelner release version.
const Version = "0.1.0"
