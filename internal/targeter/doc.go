// Package targeter holds the fast loops of a plant control: given a
// workforce target they move the posted wage until hiring or firing brings
// the unit there.
//
//   - [MarketLook]: posts the lowest wage asked on the labor market and fires
//     by wage rank
//   - [PID]: drives the wage with a PID on the workforce error, optionally
//     firing immediately when over target
package targeter
