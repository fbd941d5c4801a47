package queue

import "fmt"

// Status is the closed set of token lifecycle states.
type Status uint8

const (
	StatusQueued Status = iota + 1
	StatusServed
	StatusMissed
)

var statusNames = map[Status]string{
	StatusQueued: "QUEUED",
	StatusServed: "SERVED",
	StatusMissed: "MISSED",
}

// transitions lists every permitted move. Terminal states have no entry.
var transitions = map[Status][]Status{
	StatusQueued: {StatusServed, StatusMissed},
}

func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
