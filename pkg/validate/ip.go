package validate

import "net/netip"

// IPv4 reports whether s is a dotted-quad IPv4 address. Leading zeros in an
// octet are rejected.
func IPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IPv6 reports whether s is an IPv6 address in any textual form, including
// the IPv4-mapped "::ffff:a.b.c.d" notation.
func IPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && !addr.Is4()
}

// IP reports whether s is a valid IPv4 or IPv6 address.
func IP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}
