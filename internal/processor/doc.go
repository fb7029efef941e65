// Package processor contains the core business logic for handling
// koelner invocations. It routes words from arguments, files or stdin
// through the Cologne phonetics encoder and coordinates the phonetic
// index and the pronunciation explainer.
package processor
