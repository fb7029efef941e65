// Package cologne implements the Cologne phonetics ("Kölner Phonetik")
// encoding for German words. Text is reduced to a sequence of sound
// classes 0-8 plus word breaks so that words which are pronounced alike
// map to the same code, similar to Soundex for English.
package cologne
