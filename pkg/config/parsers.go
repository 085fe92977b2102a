package config

import (
	"net"
	"strconv"
)

// splitHostPort parses "host:port" into its parts. A value without a port
// returns an error so callers can keep it as a bare address.
func splitHostPort(v string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(v)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
