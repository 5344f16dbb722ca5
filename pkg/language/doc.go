// Package language models the closed set of supported languages and guesses
// the language of chat input.
//
// Invariants:
// - Keyword markers always win over the statistical detector.
// - Detection never fails; ambiguous input resolves to English.
// - Codes outside the supported set never escape this package.
package language
