// Package index provides a persistent phonetic index backed by SQLite.
// Words are stored together with their Cologne phonetics code so that a
// query word can be matched against everything that sounds like it,
// regardless of spelling.
package index
