package validators

import (
	"context"
	"net"
	"strings"
)

// DomainChecker reports whether an email's domain can receive mail.
type DomainChecker func(ctx context.Context, email string) bool

// IsEmailDomainValid accepts a domain with an MX record or, failing that,
// any address record.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	var r net.Resolver

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}
