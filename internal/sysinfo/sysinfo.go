// Package sysinfo provides the read-only host introspection the info
// and health screens need: CPU temperature, memory, disk, network
// identity and the background external-IP cell.
package sysinfo

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

const (
	thermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
	meminfoPath     = "/proc/meminfo"
	cpuinfoPath     = "/proc/cpuinfo"

	// UnknownIP is reported when an address cannot be determined.
	UnknownIP = "?.?.?.?"
)

// CPUTemp reads the SoC temperature in Celsius via sysfs. Returns 0 on
// any failure.
func CPUTemp() float64 {
	raw, err := os.ReadFile(thermalZonePath)
	if err != nil {
		return 0.0
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0.0
	}
	return float64(milli) / 1000.0
}

// RAM returns used and total memory in MB from /proc/meminfo.
func RAM() (used, total int) {
	raw, err := os.ReadFile(meminfoPath)
	if err != nil {
		return 0, 1
	}

	mem := make(map[string]int)
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			if kb, err := strconv.Atoi(fields[1]); err == nil {
				mem[strings.TrimSuffix(fields[0], ":")] = kb
			}
		}
	}

	totalKB := mem["MemTotal"]
	if totalKB == 0 {
		return 0, 1
	}
	usedKB := totalKB - mem["MemAvailable"]
	return usedKB / 1024, totalKB / 1024
}

// DiskPercent returns the root filesystem usage percentage.
func DiskPercent() int {
	var st unix.Statfs_t
	if err := unix.Statfs("/", &st); err != nil {
		return 0
	}
	total := st.Blocks * uint64(st.Bsize)
	if total == 0 {
		return 0
	}
	free := st.Bfree * uint64(st.Bsize)
	return int(100 * (total - free) / total)
}

// LocalIP determines the LAN address by dialing out (no packets are
// sent for UDP) and reading the chosen source address.
func LocalIP() string {
	conn, err := net.DialTimeout("udp", "8.8.8.8:80", time.Second)
	if err != nil {
		return UnknownIP
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return UnknownIP
	}
	return addr.IP.String()
}

// SSHListening probes whether the local SSH port accepts connections.
func SSHListening() bool {
	conn, err := net.DialTimeout("tcp", "127.0.0.1:22", 300*time.Millisecond)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Serial reads the Pi hardware serial from /proc/cpuinfo, or "unknown".
func Serial() string {
	raw, err := os.ReadFile(cpuinfoPath)
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.HasPrefix(line, "Serial") {
			if _, after, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(after)
			}
		}
	}
	return "unknown"
}

// DeviceID derives the stable transport client identifier.
func DeviceID() string {
	return "raspi-" + Serial()
}

// FormatUptime renders the elapsed time since start as "XhYmZs".
func FormatUptime(start, now time.Time) string {
	secs := int(now.Sub(start).Seconds())
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// SSIDCache caches the active Wi-Fi SSID, refreshing via nmcli at most
// once per TTL. nmcli can take a few hundred milliseconds, too slow to
// run every tick.
type SSIDCache struct {
	TTL time.Duration

	mu      sync.Mutex
	value   string
	fetched time.Time
}

// Get returns the cached SSID, refreshing it when stale.
func (c *SSIDCache) Get(now time.Time) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetched.IsZero() && now.Sub(c.fetched) < c.TTL {
		return c.value
	}

	c.value = querySSID()
	c.fetched = now
	return c.value
}

func querySSID() string {
	out, err := exec.Command("nmcli", "-t", "-f", "active,ssid", "dev", "wifi").Output()
	if err != nil {
		return "N/A"
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "yes:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "yes:"))
		}
	}
	return "N/A"
}
