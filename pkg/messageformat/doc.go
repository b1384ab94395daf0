// Package messageformat parses and formats ICU MessageFormat patterns.
//
// Supported syntax:
//
//	Hello, {name}!
//	{count, number}  {ratio, number, percent}  {price, number, currency}
//	{when, date, short}  {when, time, medium}
//	{count, plural, offset:1 =0 {nobody} one {# guest} other {# guests}}
//	{place, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
//	{gender, select, female {she} male {he} other {they}}
//
// Inside plural and selectordinal branches "#" prints the (offset) value
// with the locale's number format. Apostrophes follow ICU quoting: "''" is
// a literal apostrophe and "'{...}'" quotes syntax characters; an
// apostrophe before any other character is printed as is.
//
// A pattern is parsed and all sub-formatters are compiled once in New; the
// resulting MessageFormat is immutable and may be shared between
// goroutines.
package messageformat
