// Package maximizer holds the slow loop of a plant control. A Loop waits
// until the workforce matches the target, observes profits for a few weeks
// and then asks an Algorithm for the next target.
//
// Algorithms:
//   - HillClimber: one step in the direction that last raised profits, with a
//     memory of the profit seen at each workforce
//   - AlwaysMoving: the same direction rule without memory, never standing still
//   - Particle: hill climbing first, then a particle swarm step pulled towards
//     the remembered best and the best competing unit
//   - Marginal: moves one worker towards the side with positive marginal profit
//   - MarginalPID: a PID on marginal efficiency, revenue over cost
//   - CascadeEfficiency: MarginalPID whose target efficiency follows the trend
//     of a downstream price
package maximizer
