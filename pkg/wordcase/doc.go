// Package wordcase converts identifiers between camelCase, snake_case and
// space separated title words.
//
//	wordcase.CamelToSnake("dateOfMessage") // "date_of_message"
//	wordcase.SnakeToCamel("date_of_birth") // "dateOfBirth"
//	wordcase.TitleWords("CREATED_AT")      // "Created At"
//	wordcase.TitleWords("dateOfMessage")   // "Date Of Message"
//
// Word boundaries are underscores and lower-to-upper transitions of ASCII
// letters. Letter case itself is changed with golang.org/x/text/cases, so a
// Converter bound to a language applies that language's rules (for example the
// Turkish dotted and dotless i). The package level functions use language.Und.
package wordcase
