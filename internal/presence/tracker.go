// Package presence derives device connectivity from passively observed
// request traffic. The device only ever polls; it cannot be pushed to, so
// "connected" means "we heard from it recently enough".
package presence

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultConnectionTimeout is the window after the last observed device
// request during which the device counts as connected. A tunable heuristic,
// not a protocol guarantee: a device polling slower than this reads as
// disconnected even when healthy.
const DefaultConnectionTimeout = 60 * time.Second

// TelemetryReport is a device-originated status report. Nil fields were
// absent from the payload and leave recorded state untouched.
type TelemetryReport struct {
	SSID *string `json:"ssid"`
	IP   *string `json:"ip"`
	RSSI *int    `json:"rssi"`
}

// Snapshot is a point-in-time view of device presence. Connected is derived
// at snapshot time and never stored. A zero LastSeen means the device has
// never been observed.
type Snapshot struct {
	Connected      bool
	WifiName       string
	DeviceIP       string
	SignalStrength int
	LastSeen       time.Time
}

// Tracker records when the device was last heard from, plus the network
// details it reports about itself.
type Tracker struct {
	clock   clockwork.Clock
	timeout time.Duration

	mu             sync.Mutex
	lastSeen       time.Time
	wifiName       string
	deviceIP       string
	signalStrength int
}

func NewTracker(clock clockwork.Clock, timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = DefaultConnectionTimeout
	}
	return &Tracker{clock: clock, timeout: timeout}
}

// RecordSeen registers a device contact: the last-seen timestamp moves to
// now and the device IP is taken from the transport source address.
func (t *Tracker) RecordSeen(sourceIP string) {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen = now
	t.deviceIP = Normalize(sourceIP)
}

// RecordTelemetry applies RecordSeen semantics and additionally stores any
// fields present in the report. A device-reported IP wins over the transport
// source address: the device knows its own LAN address, while the transport
// address may be a NAT hop.
func (t *Tracker) RecordTelemetry(report TelemetryReport, sourceIP string) {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastSeen = now
	t.deviceIP = Normalize(sourceIP)

	if report.IP != nil && *report.IP != "" {
		t.deviceIP = Normalize(*report.IP)
	}
	if report.SSID != nil {
		t.wifiName = *report.SSID
	}
	if report.RSSI != nil {
		t.signalStrength = *report.RSSI
	}
}

// Connected reports whether the device was heard from within the timeout
// window. False if it was never seen. Pure read, no side effects.
func (t *Tracker) Connected() bool {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connectedLocked(now)
}

func (t *Tracker) connectedLocked(now time.Time) bool {
	if t.lastSeen.IsZero() {
		return false
	}
	return now.Sub(t.lastSeen) < t.timeout
}

// Snapshot returns a consistent copy of the tracker state with the connected
// flag computed fresh against the current clock.
func (t *Tracker) Snapshot() Snapshot {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		Connected:      t.connectedLocked(now),
		WifiName:       t.wifiName,
		DeviceIP:       t.deviceIP,
		SignalStrength: t.signalStrength,
		LastSeen:       t.lastSeen,
	}
}

// Normalize strips the IPv6-mapped-IPv4 textual prefix that Go's network
// stack produces for IPv4 peers on dual-stack listeners.
func Normalize(ip string) string {
	return strings.TrimPrefix(ip, "::ffff:")
}
