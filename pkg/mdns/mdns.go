// Package mdns advertises a running trivia service on the local
// network so that players can find it without knowing its address.
package mdns

import (
	"fmt"
	"net"

	"github.com/hashicorp/go-sockaddr"
	"github.com/hashicorp/mdns"
)

// ServiceType is the DNS-SD type the service is published under.
const ServiceType = "_trivia._tcp"

// Server wraps the underlying mDNS implementation to provide a
// simplified interface.
type Server struct {
	*mdns.Server
}

// NewService builds the zone entry describing an instance listening
// on port.  If ip is nil the first private address of the host is
// used.
func NewService(instance string, port int, ip net.IP) (*mdns.MDNSService, error) {
	if ip == nil {
		lAddr, err := sockaddr.GetPrivateIP()
		if err != nil {
			return nil, err
		}
		if lAddr == "" {
			return nil, fmt.Errorf("no private address to advertise")
		}
		ip = net.ParseIP(lAddr)
	}

	info := []string{"Trivia Question Service", "path=/quiz"}
	return mdns.NewMDNSService(instance, ServiceType, "", "", port, []net.IP{ip}, info)
}

// NewServer starts answering mDNS queries for the given instance.
func NewServer(instance string, port int) (*Server, error) {
	service, err := NewService(instance, port, nil)
	if err != nil {
		return nil, err
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, err
	}

	return &Server{server}, nil
}
