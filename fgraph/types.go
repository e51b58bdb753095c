package fgraph

import "fmt"

// TypeID is an opaque identifier interned by the external type repository.
// Equality is by value.
type TypeID uint64

// AddressRange is a half-open byte range [Start, Start+Size) in the
// inferior process's address space. Equality is structural.
type AddressRange struct {
	Start uint64
	Size  uint64
}

// End returns the address one past the last byte in the range.
func (r AddressRange) End() uint64 {
	return r.Start + r.Size
}

// Intersects reports whether r and o share at least one byte.
// Zero-size ranges never intersect anything, including themselves.
func (r AddressRange) Intersects(o AddressRange) bool {
	if r.Size == 0 || o.Size == 0 {
		return false
	}

	return r.Start < o.End() && o.Start < r.End()
}

// String renders the range as "[start, end)" in hex, for log lines and
// test failure output.
func (r AddressRange) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Start, r.End())
}

// HypothesisKind distinguishes the three hypothesis variants.
type HypothesisKind int

const (
	// DeclaredType asserts that some part of the program declares this
	// range to hold an object of this type.
	DeclaredType HypothesisKind = iota
	// ContentType asserts that the bit pattern in this range is
	// consistent with this type.
	ContentType
	// Observation is a payload-free anchor vertex used with a forcing
	// factor to represent a hard fact.
	Observation
)

// String implements fmt.Stringer for readable test failures and logs.
func (k HypothesisKind) String() string {
	switch k {
	case DeclaredType:
		return "DeclaredType"
	case ContentType:
		return "ContentType"
	case Observation:
		return "Observation"
	default:
		return fmt.Sprintf("HypothesisKind(%d)", int(k))
	}
}

// FactorKind distinguishes the four factor variants.
type FactorKind int

const (
	// Decomposition links a parent declared/content-type hypothesis to
	// one produced by array or record decomposition.
	Decomposition FactorKind = iota
	// Pointer links a pointer's declared/content-type hypotheses to the
	// declared-type hypothesis of its pointee.
	Pointer
	// Content links an Observation of raw memory content to a
	// ContentType hypothesis.
	Content
	// DeclarationContent links a DeclaredType and a ContentType
	// hypothesis for the same range and type.
	DeclarationContent
)

// String implements fmt.Stringer for readable test failures and logs.
func (k FactorKind) String() string {
	switch k {
	case Decomposition:
		return "Decomposition"
	case Pointer:
		return "Pointer"
	case Content:
		return "Content"
	case DeclarationContent:
		return "DeclarationContent"
	default:
		return fmt.Sprintf("FactorKind(%d)", int(k))
	}
}

// Message is an unnormalised pair (w_false, w_true) of non-negative
// weights sent along an edge.
type Message struct {
	WFalse float64
	WTrue  float64
}

// at returns the weight for truth value v (0 = false, 1 = true).
func (m Message) at(v int) float64 {
	if v == 0 {
		return m.WFalse
	}

	return m.WTrue
}

// normalized returns m scaled so its two components sum to 1. If both
// components are zero, the message is returned unchanged (there is
// nothing meaningful to normalise to).
func (m Message) normalized() Message {
	total := m.WFalse + m.WTrue
	if total == 0 {
		return m
	}

	return Message{WFalse: m.WFalse / total, WTrue: m.WTrue / total}
}

// probability returns p(true) = WTrue / (WFalse + WTrue). If both
// components are zero, which happens when an all-zero weight table
// starves a factor message to (0,0), it returns 0.
func (m Message) probability() float64 {
	total := m.WFalse + m.WTrue
	if total == 0 {
		return 0
	}

	return m.WTrue / total
}
