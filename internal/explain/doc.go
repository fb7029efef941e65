// Package explain provides functionality for fetching detailed phonetic
// information about German words using OpenAI's GPT models. It generates
// IPA transcriptions with detailed explanations for language learners.
package explain
