// Package plantcontrol binds the two loops that run a production unit's
// workforce behind one control surface.
//
//   - [Base]: owns the posted wage and the buying flag
//   - [Composite]: one [Targeter] (fast loop) plus one [Maximizer] (slow loop)
//   - [Decorator]: wraps a [Control] and passes every call through
//   - [MatchBest]: decorator that matches better wage bids of competitors
//
// Targeters and maximizers are constructed after decoration so the calls
// they make on their control travel through every decorator. [Decorate]
// folds decorator constructors over a base control; the registry in package
// experiment maps identifiers to constructors.
package plantcontrol
