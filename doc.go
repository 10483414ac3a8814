// Package tokensense implements a token burn calculator and holdings tracker.
//
// The calculator turns a few token-economics inputs (initial supply, burn
// percentage, price per token and a position) into derived figures:
//   - Circulating supply: initial supply minus the burned part.
//   - Market cap: circulating supply valued at the unit price.
//   - Holdings value: the position valued at the unit price.
//
// A position is kept in two linked forms, an absolute token amount and a
// percentage of circulating supply. Editing the amount, the supply or the
// burn percentage recomputes the percentage. Editing the percentage sets the
// amount. The percentage never drives the amount on its own, so the two
// forms cannot chase each other.
//
// A Session owns the form State of one interactive session and is the single
// entry point for edits coming from the `tsense` command line tool, its
// terminal UI and edit scripts.
package tokensense
