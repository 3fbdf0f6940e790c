// Package rules implements the N-way rock-paper-scissors rule: for any odd
// number of moves arranged on a cycle, each move beats the half of the others
// behind it and loses to the half ahead of it.
//
// Move lists from the outside world are validated by ParseMoveSet before any
// game component sees them.
package rules
