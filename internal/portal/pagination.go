package portal

// Page describes one window of a list request. The management APIs use
// limit/offset, SCIM uses count/startIndex; both map onto this.
type Page struct {
	Limit  int
	Offset int
}

const DefaultPageSize = 10

// Normalize clamps nonsense values to a usable window.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// StartIndex is the SCIM translation of the offset. SCIM indexes from
// one, not zero.
func (p Page) StartIndex() int {
	return p.Offset + 1
}

// Next returns the window after this one.
func (p Page) Next() Page {
	p.Offset += p.Limit
	return p
}
