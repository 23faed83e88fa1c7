// Package economy is a small simulated economy to run plant controls in: a
// sector of firms, each owning one plant, hiring from a shared labor pool
// and selling into one goods market with linear demand.
//
// The sector runs on a sched.Scheduler:
//
//	Dawn        workers paid less than they ask quit
//	Trade       the labor pool matches quotes with idle workers
//	Production  plants put their daily output on the goods market
//	Cleanup     the goods market clears and firms book revenue and costs
package economy
