package core

// StorefrontParams holds the CLI-supplied service parameters.
type StorefrontParams struct {
	Port int
}

const (
	// WaitTime bounds request handling and graceful shutdown, in seconds.
	WaitTime = 10

	// Synthesized order ids fall in [MinOrderID, MaxOrderID].
	MinOrderID = 10000
	MaxOrderID = 99999

	// MinAddressLen is the exclusive lower bound on a trimmed address.
	MinAddressLen = 8

	PhoneDigits = 10
)
