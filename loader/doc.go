// Package loader reads and writes weight matrices in the plain text form used
// by the hamcycle command.
//
// Format:
//   - One matrix row per line; every integer token on the line is a cell.
//     Separators are free-form: spaces, commas and brackets are all ignored,
//     so "0 10 15", "0,10,15" and "[0, 10, 15]" read the same.
//   - Blank lines are skipped.
//   - A leading '-' is kept, so negative weights reach matrix validation and
//     are rejected there with matrix.ErrNegativeWeight.
//
// Parse returns the raw rows; Load and LoadFile additionally validate them
// into a *matrix.Dense. Write emits the space separated form that Parse reads.
package loader
