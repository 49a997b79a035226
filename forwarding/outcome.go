package forwarding

import "fmt"

/* Outcome classifies a single delivery attempt
 * Only Delivered counts as success; every other value ends in a retry or in failure
 */
type Outcome int

const (
	Delivered Outcome = iota + 1
	Rejected
	TimedOut
	Refused
	Errored
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Rejected:
		return "rejected"
	case TimedOut:
		return "timed_out"
	case Refused:
		return "refused"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// NewOutcome creates an Outcome from a string
func NewOutcome(str string) Outcome {
	switch str {
	case "delivered":
		return Delivered
	case "rejected":
		return Rejected
	case "timed_out":
		return TimedOut
	case "refused":
		return Refused
	default:
		return Errored
	}
}

// Validate checks if the outcome is valid
func (o Outcome) Validate() error {
	if o < Delivered || o > Errored {
		return fmt.Errorf("invalid outcome: %d", o)
	}
	return nil
}

// IsSuccess reports whether the target accepted the webhook
func (o Outcome) IsSuccess() bool {
	return o == Delivered
}
