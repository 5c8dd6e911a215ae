// Package platform holds OS-facing helpers for the desktop mode.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strconv"
	"sync"
)

// ErrAlreadyRunning indicates another desktop timer already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const (
	lockHost    = "127.0.0.1"
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard holds the single-instance lock: a listener on a loopback
// port derived from the application name.
type InstanceGuard struct {
	mu       sync.Mutex
	listener net.Listener
	address  string
}

// AcquireSingleInstance takes the lock for appName or returns
// ErrAlreadyRunning when another process holds it.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := net.JoinHostPort(lockHost, strconv.Itoa(portFromName(appName)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock. It is safe to call more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()

	if guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the loopback address holding the lock.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func portFromName(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(maxLockPort - minLockPort + 1)
	return minLockPort + int(hash.Sum32()%span)
}
