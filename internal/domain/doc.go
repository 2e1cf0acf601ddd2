// Package domain contains the PESEL model: field offsets, the validation chain and
// the date/sex decoders.
//
// The domain is I/O-agnostic: it does not read input, print, or log. Callers in
// usecase and cli wrap it with those concerns.
package domain
