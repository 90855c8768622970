// Package notation holds the textual conventions shared by unit expressions:
// the metric prefix table and the rewriting of Unicode superscript exponents.
//
// The prefix table is an explicit priority list. Lookups walk it in order and
// the first matching entry wins, both when mapping a symbol's leading
// character to a multiplier and when mapping a multiplier back to a letter.
package notation
