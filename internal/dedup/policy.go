package dedup

import "fmt"

// Policy decides whether a template may produce another instance given
// how many of its instances are already in the seen-set.
type Policy interface {
	Allow(uses int) bool
}

// Cap allows a template until it has n seen instances. n below 1 is
// treated as 1.
func Cap(n int) Policy {
	return capPolicy(max(n, 1))
}

// Once allows each template a single instance per cycle.
func Once() Policy {
	return Cap(1)
}

type capPolicy int

func (c capPolicy) Allow(uses int) bool {
	return uses < int(c)
}

func (c capPolicy) String() string {
	return fmt.Sprintf("cap(%d)", int(c))
}
