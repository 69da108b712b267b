// Package validate checks a message before anything renders it.
//
// Rules, first failure wins:
//
//  1. the input is valid UTF-8                  ReasonMalformed
//  2. it is not empty                           ReasonEmpty
//  3. at most MaxLength runes (default 30)      ReasonTooLong
//  4. at least MinLength runes (default 1)      ReasonTooShort
//  5. upper-cased, every rune is in A–Z 0–9 space ! ? . , : - + = ( )
//     ReasonCharset
//
// Validation reports a Result; it never panics and never returns an error by
// itself. Result.Err converts a failure into a *ValidationError that matches
// the reason's sentinel with errors.Is.
package validate
