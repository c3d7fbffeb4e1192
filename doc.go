// Package teller provides the core of a single-node, file-backed account ledger.
//
// Accounts are stored one per line in plain text files, as comma separated records:
//
//	123456,Secret1!,Jane Doe,5000 COP
//
// At rest, every line is obfuscated with the reversible transform of package
// [github.com/etnz/teller/bits]. A [Session] loads the users and admins ledgers, normalizes
// them to the obfuscated form on disk, decodes them in memory, and writes them back obfuscated
// when it is closed.
//
// The core functionalities include:
//   - Record Codec: Encoding and decoding account records to and from ledger lines.
//   - Ledger Store: An ordered, in-memory collection of lines with lookup by identifier and
//     replacement of the matched line.
//   - Account Operations: Balance inquiry and withdrawal, both charging a fixed [Fee].
//   - Registration: Admin authentication and validated registration of new accounts.
//
// This package serves as the foundational logic for the `atm` command-line tool.
package teller
