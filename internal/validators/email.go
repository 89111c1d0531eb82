package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid does a light liveness check on the domain part: an MX
// record or at least a resolvable host. It is a registration-time gate, not
// proof the mailbox exists.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
