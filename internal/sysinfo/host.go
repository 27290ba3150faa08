package sysinfo

import "time"

// Host bundles the introspection sources the renderers consume.
type Host struct {
	extIP *ExtIP
	ssid  SSIDCache
}

// NewHost creates a host info provider backed by the given external-IP
// cell.
func NewHost(extIP *ExtIP) *Host {
	return &Host{
		extIP: extIP,
		ssid:  SSIDCache{TTL: 30 * time.Second},
	}
}

func (h *Host) LocalIP() string           { return LocalIP() }
func (h *Host) ExternalIP() string        { return h.extIP.Addr() }
func (h *Host) SSID(now time.Time) string { return h.ssid.Get(now) }
func (h *Host) CPUTemp() float64          { return CPUTemp() }
func (h *Host) RAM() (used, total int)    { return RAM() }
func (h *Host) DiskPercent() int          { return DiskPercent() }
func (h *Host) SSHListening() bool        { return SSHListening() }
