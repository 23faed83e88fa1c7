package control

import (
	"fmt"
	"strings"
)

// Cascade chains two loops. The master tracks a stock and its output becomes
// the setpoint of the slave, which tracks a flow.
type Cascade struct {
	master   *PID
	slave    *PID
	setpoint float64
}

// NewCascade builds a master with windup stop and non-negative output and a
// slave that may go negative and never stops integrating.
func NewCascade(master, slave Gains, opts ...Option) *Cascade {
	slaveOpts := append([]Option{WithWindupStop(false), WithCanGoNegative(true)}, opts...)
	return &Cascade{
		master: NewPIDFromGains(master, WithWindupStop(true), WithCanGoNegative(false)),
		slave:  NewPIDFromGains(slave, slaveOpts...),
	}
}

// Adjust runs both loops in one step: the master on the stock error, then the
// slave on its freshly computed setpoint against the measured flow.
func (c *Cascade) Adjust(stockTarget, stockMeasured, flowMeasured float64) {
	c.master.Adjust(stockTarget, stockMeasured)
	c.setpoint = c.master.CurrentMV()
	c.slave.Adjust(c.setpoint, flowMeasured)
}

// CurrentMV is the slave output.
func (c *Cascade) CurrentMV() float64 { return c.slave.CurrentMV() }

// SlaveSetpoint is the setpoint used by the last slave adjustment.
func (c *Cascade) SlaveSetpoint() float64 { return c.setpoint }

func (c *Cascade) Master() *PID { return c.master }

func (c *Cascade) Slave() *PID { return c.slave }

// SetOffset biases the slave, whose output is the cascade output.
func (c *Cascade) SetOffset(offset float64) { c.slave.SetOffset(offset) }

func (c *Cascade) Speed() float64 { return c.slave.Speed() }

// Reset clears both loops.
func (c *Cascade) Reset() {
	c.master.Reset()
	c.slave.Reset()
	c.setpoint = 0
}

// GetParams returns the gains of both loops, prefixed by loop name.
func (c *Cascade) GetParams() map[string]float64 {
	params := make(map[string]float64)
	for k, v := range c.master.GetParams() {
		params["master."+k] = v
	}
	for k, v := range c.slave.GetParams() {
		params["slave."+k] = v
	}
	return params
}

// SetParam tunes "master.Kp", "slave.Ki" and so on.
func (c *Cascade) SetParam(name string, value float64) error {
	if rest, ok := strings.CutPrefix(name, "master."); ok {
		return c.master.SetParam(rest, value)
	}
	if rest, ok := strings.CutPrefix(name, "slave."); ok {
		return c.slave.SetParam(rest, value)
	}
	return fmt.Errorf("cascade: parameter %q needs a master. or slave. prefix", name)
}
